package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

// BlobStore is the binary half of the document store. The metadata half
// lives in the DocumentRepository; UseCase keeps both in step.
type BlobStore interface {
	Put(path string, data []byte) error
	Get(path string) ([]byte, error)
	Delete(path string) error
}

// UploadInput carries everything needed to store a new document.
type UploadInput struct {
	UserID            string
	BusinessProfileID string
	FileName          string
	FileType          string
	Category          string
	ExpiryDate        *time.Time
	Data              []byte
}

type UseCase struct {
	docs        repository.DocumentRepository
	blobs       BlobStore
	logger      *zap.Logger
	maxFileSize int64
	now         func() time.Time
}

func New(docs repository.DocumentRepository, blobs BlobStore, maxFileSize int64, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	return &UseCase{
		docs:        docs,
		blobs:       blobs,
		logger:      logger,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// Upload validates the input, stores the binary, then persists metadata.
// If the metadata insert fails the orphaned binary is removed again so the
// two halves never diverge.
func (uc *UseCase) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	if err := uc.validateUpload(input); err != nil {
		return nil, err
	}

	storagePath := fmt.Sprintf("documents/%s/%d_%s", input.UserID, uc.now().UnixMilli(), input.FileName)

	if err := uc.blobs.Put(storagePath, input.Data); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to store file", err)
	}

	doc := &domain.Document{
		ID:                uuid.NewString(),
		UserID:            input.UserID,
		BusinessProfileID: input.BusinessProfileID,
		FileName:          input.FileName,
		FileType:          input.FileType,
		FileSize:          int64(len(input.Data)),
		StoragePath:       storagePath,
		Category:          input.Category,
		ExpiryDate:        input.ExpiryDate,
	}
	doc.DownloadURL = "/api/v1/documents/" + doc.ID + "/download"

	created, err := uc.docs.Create(ctx, doc)
	if err != nil {
		if cleanupErr := uc.blobs.Delete(storagePath); cleanupErr != nil {
			uc.logger.Warn("failed to clean up orphaned blob",
				zap.String("storage_path", storagePath),
				zap.Error(cleanupErr))
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Document, error) {
	return uc.docs.GetByID(ctx, id)
}

// Download returns metadata plus the stored binary.
func (uc *UseCase) Download(ctx context.Context, id string) (*domain.Document, []byte, error) {
	doc, err := uc.docs.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.blobs.Get(doc.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return doc, data, nil
}

func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.Document, error) {
	return uc.docs.ListByUser(ctx, userID)
}

func (uc *UseCase) ListByCategory(ctx context.Context, userID, category string) ([]domain.Document, error) {
	return uc.docs.ListByCategory(ctx, userID, category)
}

// ListExpiring returns the user's documents expiring within the standard
// 30-day window, soonest first.
func (uc *UseCase) ListExpiring(ctx context.Context, userID string) ([]domain.Document, error) {
	cutoff := uc.now().Add(domain.ExpiryWindowDays * 24 * time.Hour)
	return uc.docs.ListExpiring(ctx, userID, cutoff)
}

func (uc *UseCase) ListAll(ctx context.Context) ([]domain.Document, error) {
	return uc.docs.ListAll(ctx)
}

func (uc *UseCase) Update(ctx context.Context, id string, update repository.DocumentUpdate) error {
	return uc.docs.Update(ctx, id, update)
}

// Delete removes metadata and the underlying binary. Metadata goes first:
// once the row is gone the document no longer exists to callers, and a
// leftover blob is harmless until the next delete attempt.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.docs.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.blobs.Delete(doc.StoragePath); err != nil {
		uc.logger.Warn("failed to release stored file",
			zap.String("storage_path", doc.StoragePath),
			zap.Error(err))
	}
	return nil
}

func (uc *UseCase) validateUpload(input UploadInput) error {
	if input.UserID == "" || input.BusinessProfileID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "owner is required")
	}
	if input.FileName == "" {
		return domain.NewError(domain.ErrCodeInvalid, "file name is required")
	}
	if len(input.Data) == 0 {
		return domain.NewError(domain.ErrCodeInvalid, "file is empty")
	}
	if int64(len(input.Data)) > uc.maxFileSize {
		return domain.NewError(domain.ErrCodeInvalid, "file exceeds maximum size")
	}
	if input.Category == "" {
		return domain.NewError(domain.ErrCodeInvalid, "category is required")
	}
	return nil
}
