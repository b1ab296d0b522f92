package repository

import "github.com/serranorte/serraria-api/internal/domain/entity"

// NotificationRepository define o porto de persistência das notificações.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListByUser devolve as notificações da conta, mais recentes primeiro.
	ListByUser(userID string) ([]*entity.Notification, error)
	// MarkRead marca como lida; devolve false se não existe ou não pertence à conta.
	MarkRead(id, userID string) (bool, error)
	MarkAllRead(userID string) error
	CountUnread(userID string) (int64, error)
	// HasUnreadAlertForItem informa se já existe alerta não lido para o item
	// de estoque (chave de deduplicação da varredura de estoque baixo).
	HasUnreadAlertForItem(userID, stockItemID string) (bool, error)
}
