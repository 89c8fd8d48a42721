package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation of NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) repository.NotificationRepository {
	return &notificationRepository{pool: pool}
}

const notificationColumns = `id, user_id, type, title, message, read, action_url, created_at`

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n == nil {
		return nil, domain.ErrInvalidPayload
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO notifications (id, user_id, type, title, message, read, action_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Read,
		n.ActionURL,
	).Scan(&n.CreatedAt); err != nil {
		return nil, err
	}

	return n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	const query = `
	SELECT ` + notificationColumns + `
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *notificationRepository) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	const query = `
	SELECT ` + notificationColumns + `
	FROM notifications
	WHERE user_id = $1 AND read = FALSE
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	const query = `UPDATE notifications SET read = TRUE WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	const query = `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM notifications WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func collectNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Read,
			&n.ActionURL,
			&n.CreatedAt,
		); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrNotificationNotFound
			}
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
