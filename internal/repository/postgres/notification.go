package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/docspot/booking-api/internal/model"
)

// insertNotification writes one inbox entry. It runs against either the
// pool or a transaction so the workflow repositories can append inside
// their own transactions.
func insertNotification(ctx context.Context, q sqlx.ExtContext, n *model.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, message, data, on_click_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	_, err := q.ExecContext(ctx, query,
		n.ID,
		n.UserID,
		n.Type,
		n.Message,
		n.Data,
		n.OnClickPath,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return insertNotification(ctx, r.db, n)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	query := `
		SELECT id, user_id, type, message, data, on_click_path, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var notifications []*model.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE user_id = $1
	`
	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
