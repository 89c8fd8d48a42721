package repository

import (
	"context"

	"github.com/naijacomply/backend/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BusinessProfile, error)
	GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	Create(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error)
	Update(ctx context.Context, profile *domain.BusinessProfile) error
}
