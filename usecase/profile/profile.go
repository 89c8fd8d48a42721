package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

func New(users repository.UserRepository, profiles repository.ProfileRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		profiles: profiles,
		logger:   logger,
	}
}

func (uc *UseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *UseCase) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil || user.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) GetBusinessProfile(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	return uc.profiles.GetByUser(ctx, userID)
}

// CreateBusinessProfile validates locally before any store call and links
// the created profile back to the user record.
func (uc *UseCase) CreateBusinessProfile(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, profile.UserID)
	if err == nil {
		user.BusinessProfileID = created.ID
		if err := uc.users.Upsert(ctx, user); err != nil {
			uc.logger.Warn("failed to link business profile to user",
				zap.String("user_id", profile.UserID),
				zap.Error(err))
		}
	}

	return created, nil
}

func (uc *UseCase) UpdateBusinessProfile(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
