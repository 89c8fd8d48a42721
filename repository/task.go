package repository

import (
	"context"

	"github.com/naijacomply/backend/domain"
)

// TaskRepository persists compliance tasks. ListByUser returns results
// ordered by due date ascending; that ordering is part of the contract.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ComplianceTask, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ComplianceTask, error)
	ListAll(ctx context.Context) ([]domain.ComplianceTask, error)
	Create(ctx context.Context, task *domain.ComplianceTask) (*domain.ComplianceTask, error)
	Update(ctx context.Context, task *domain.ComplianceTask) error
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}
