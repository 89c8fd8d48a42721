package repository

import (
	"context"
	"time"

	"github.com/naijacomply/backend/domain"
)

// DocumentUpdate carries the mutable metadata fields of a stored document.
type DocumentUpdate struct {
	Category   string
	ExpiryDate *time.Time
}

// DocumentRepository persists document metadata. The binary itself lives
// in the blob store under Document.StoragePath.
type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Document, error)
	ListByCategory(ctx context.Context, userID, category string) ([]domain.Document, error)
	ListExpiring(ctx context.Context, userID string, before time.Time) ([]domain.Document, error)
	ListAll(ctx context.Context) ([]domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, id string, update DocumentUpdate) error
	Delete(ctx context.Context, id string) error
}
