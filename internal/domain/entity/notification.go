package entity

import "time"

// Tipos de notificação exibidos no painel.
const (
	NotificationAlert   = "alert"
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)

// Notification é criada pelo sistema (estoque baixo, venda concluída).
// IsRead só transiciona de false para true, nunca volta.
// StockItemID referencia o item que originou um alerta de estoque baixo;
// serve de chave de deduplicação enquanto o alerta seguir não lido.
type Notification struct {
	ID          string
	UserID      string
	Title       string
	Message     string
	Type        string
	StockItemID *string
	IsRead      bool
	CreatedAt   time.Time
}
