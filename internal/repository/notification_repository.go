package repository

import (
	"context"
	"database/sql"

	"github.com/skyops/airline-backoffice/internal/model"
)

// NotificationRepo appends to and reads the `notifications` table. Rows
// are written by the booking event consumer and read back per user.
type NotificationRepo struct{ DB *sql.DB }

func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{DB: db} }

// Insert stores one notification for a user.
func (r *NotificationRepo) Insert(ctx context.Context, userID uint64, message string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO notifications (user_id, message) VALUES (?,?)",
		userID, message)
	return err
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT notification_id, user_id, message, created_at FROM notifications WHERE user_id=? ORDER BY notification_id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
