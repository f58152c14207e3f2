package postgres

import (
	"context"

	"momentum/internal/domain"
)

// NotificationRepo implements domain.NotificationRepository on Postgres.
type NotificationRepo struct {
	db *DB
}

func NewNotificationRepo(db *DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

const notificationCols = "notification_id, user_id, message, COALESCE(action, ''), read, created_at"

func scanNotification(row interface{ Scan(...any) error }) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.Action, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	return scanNotification(r.db.sql.QueryRowContext(ctx,
		`INSERT INTO notifications (user_id, message, action)
		 VALUES ($1, $2, $3)
		 RETURNING `+notificationCols,
		n.UserID, n.Message, nullIfEmpty(n.Action),
	))
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+notificationCols+" FROM notifications WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *NotificationRepo) MarkRead(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *NotificationRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM notifications WHERE notification_id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
