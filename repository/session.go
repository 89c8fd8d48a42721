package repository

import (
	"context"

	"github.com/naijacomply/backend/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Extend(ctx context.Context, id string, ttlSeconds int) error
	Delete(ctx context.Context, id string) error
}
