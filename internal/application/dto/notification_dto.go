package dto

import "time"

// NotificationResponse notificação do painel.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse lista + contador de não lidas.
type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
}

// SweepResponse resultado da varredura de estoque baixo.
type SweepResponse struct {
	Created int `json:"created"`
}
