package domain

import (
	"context"
	"time"
)

// Notification is a message delivered to a user's inbox.
type Notification struct {
	ID        int64     `json:"notification_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Action    string    `json:"action,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationRepository defines the port for notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id int64) (bool, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}
