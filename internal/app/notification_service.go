package app

import (
	"context"
	"strings"

	"momentum/internal/domain"
)

// NotificationService encapsulates the per-user notification inbox.
type NotificationService struct {
	notifications domain.NotificationRepository
}

// NewNotificationService creates a NotificationService backed by the given repository.
func NewNotificationService(notifications domain.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// CreateNotification stores a new notification for a user.
func (s *NotificationService) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if strings.TrimSpace(n.Message) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "message", Message: "Message is required"}}}
	}
	return s.notifications.Create(ctx, n)
}

// ListNotifications returns the user's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id int64) error {
	ok, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// DeleteNotification removes one of the user's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, id int64) error {
	deleted, err := s.notifications.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
