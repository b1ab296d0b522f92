package postgres

import (
	"context"
	"fmt"

	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository constrói o adaptador de notificações.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create insere a notificação.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, stock_item_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.StockItemID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// ListByUser devolve as notificações da conta, mais recentes primeiro.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, stock_item_id, is_read, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifs []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.StockItemID, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list notifications: scan: %w", err)
		}
		notifs = append(notifs, &n)
	}
	return notifs, rows.Err()
}

// MarkRead marca como lida; devolve false se não existe ou não pertence à conta.
func (r *NotificationRepo) MarkRead(id, userID string) (bool, error) {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query, id, userID)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAllRead marca todas as notificações da conta como lidas.
func (r *NotificationRepo) MarkAllRead(userID string) error {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`
	if _, err := r.q.Exec(context.Background(), query, userID); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// CountUnread conta as notificações não lidas da conta.
func (r *NotificationRepo) CountUnread(userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// HasUnreadAlertForItem informa se já existe alerta não lido para o item.
func (r *NotificationRepo) HasUnreadAlertForItem(userID, stockItemID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND stock_item_id = $2 AND type = $3 AND is_read = false
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, userID, stockItemID, entity.NotificationAlert).Scan(&exists); err != nil {
		return false, fmt.Errorf("check unread alert: %w", err)
	}
	return exists, nil
}
