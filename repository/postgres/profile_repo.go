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

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation of ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `id, user_id, business_name, business_type, industry, cac_reg_no,
	state, tax_office, tin, vat_status, created_at, updated_at`

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	const query = `
	SELECT ` + profileColumns + `
	FROM business_profiles
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanProfile(row)
}

func (r *profileRepository) GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	const query = `
	SELECT ` + profileColumns + `
	FROM business_profiles
	WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)
	return scanProfile(row)
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if profile == nil {
		return nil, domain.ErrInvalidPayload
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.VATStatus == "" {
		profile.VATStatus = domain.VATNotRegistered
	}

	const query = `
	INSERT INTO business_profiles (id, user_id, business_name, business_type, industry,
		cac_reg_no, state, tax_office, tin, vat_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.BusinessName,
		profile.BusinessType,
		profile.Industry,
		profile.CACRegNo,
		profile.State,
		profile.TaxOffice,
		profile.TIN,
		profile.VATStatus,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	if profile == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE business_profiles
	SET business_name = $2,
		business_type = $3,
		industry = $4,
		cac_reg_no = $5,
		state = $6,
		tax_office = $7,
		tin = $8,
		vat_status = $9,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.BusinessName,
		profile.BusinessType,
		profile.Industry,
		profile.CACRegNo,
		profile.State,
		profile.TaxOffice,
		profile.TIN,
		profile.VATStatus,
	).Scan(&profile.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	return nil
}

func scanProfile(row interface {
	Scan(dest ...interface{}) error
}) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile

	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.BusinessName,
		&profile.BusinessType,
		&profile.Industry,
		&profile.CACRegNo,
		&profile.State,
		&profile.TaxOffice,
		&profile.TIN,
		&profile.VATStatus,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}
