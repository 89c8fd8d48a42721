package document

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

type fakeDocRepo struct {
	mu         sync.Mutex
	docs       map[string]domain.Document
	failCreate bool
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[string]domain.Document)}
}

func (f *fakeDocRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return &doc, nil
}

func (f *fakeDocRepo) ListByUser(_ context.Context, userID string) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Document
	for _, doc := range f.docs {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (f *fakeDocRepo) ListByCategory(_ context.Context, userID, category string) ([]domain.Document, error) {
	docs, _ := f.ListByUser(nil, userID)
	var out []domain.Document
	for _, doc := range docs {
		if doc.Category == category {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeDocRepo) ListExpiring(_ context.Context, userID string, before time.Time) ([]domain.Document, error) {
	docs, _ := f.ListByUser(nil, userID)
	var out []domain.Document
	for _, doc := range docs {
		if doc.HasExpiry() && !doc.ExpiryDate.After(before) {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(*out[j].ExpiryDate) })
	return out, nil
}

func (f *fakeDocRepo) ListAll(_ context.Context) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Document
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeDocRepo) Create(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return nil, domain.WrapError(domain.ErrCodeInternal, "store unavailable", nil)
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.UploadedAt = time.Now()
	doc.UpdatedAt = doc.UploadedAt
	f.docs[doc.ID] = *doc
	return doc, nil
}

func (f *fakeDocRepo) Update(_ context.Context, id string, update repository.DocumentUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	if update.Category != "" {
		doc.Category = update.Category
	}
	if update.ExpiryDate != nil {
		doc.ExpiryDate = update.ExpiryDate
	}
	f.docs[id] = doc
	return nil
}

func (f *fakeDocRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(f.docs, id)
	return nil
}

type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(path string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[path] = append([]byte(nil), data...)
	return nil
}

func (f *fakeBlobStore) Get(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.blobs[path]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return data, nil
}

func (f *fakeBlobStore) Delete(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, path)
	return nil
}

func (f *fakeBlobStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.blobs)
}

func validUpload() UploadInput {
	return UploadInput{
		UserID:            "u1",
		BusinessProfileID: "bp1",
		FileName:          "cac-certificate.pdf",
		FileType:          "application/pdf",
		Category:          domain.DocCategoryCAC,
		Data:              []byte("pdf-bytes"),
	}
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	repo := newFakeDocRepo()
	blobs := newFakeBlobStore()
	uc := New(repo, blobs, 0, nil)

	doc, err := uc.Upload(context.Background(), validUpload())
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, int64(len("pdf-bytes")), doc.FileSize)
	assert.Contains(t, doc.DownloadURL, doc.ID)
	assert.Equal(t, 1, blobs.count())

	stored, data, err := uc.Download(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.StoragePath, stored.StoragePath)
	assert.Equal(t, []byte("pdf-bytes"), data)
}

func TestUploadCleansUpBlobWhenMetadataFails(t *testing.T) {
	repo := newFakeDocRepo()
	repo.failCreate = true
	blobs := newFakeBlobStore()
	uc := New(repo, blobs, 0, nil)

	_, err := uc.Upload(context.Background(), validUpload())
	require.Error(t, err)
	assert.Equal(t, 0, blobs.count(), "orphaned blob must be removed")
}

func TestUploadValidation(t *testing.T) {
	uc := New(newFakeDocRepo(), newFakeBlobStore(), 4, nil)

	tests := []struct {
		name   string
		mutate func(*UploadInput)
	}{
		{"missing owner", func(in *UploadInput) { in.UserID = "" }},
		{"missing file name", func(in *UploadInput) { in.FileName = "" }},
		{"empty file", func(in *UploadInput) { in.Data = nil }},
		{"oversized file", func(in *UploadInput) { in.Data = []byte("too large") }},
		{"missing category", func(in *UploadInput) { in.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUpload()
			tt.mutate(&input)
			_, err := uc.Upload(context.Background(), input)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestDeleteRemovesBothHalves(t *testing.T) {
	repo := newFakeDocRepo()
	blobs := newFakeBlobStore()
	uc := New(repo, blobs, 0, nil)

	doc, err := uc.Upload(context.Background(), validUpload())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), doc.ID))

	_, err = uc.Get(context.Background(), doc.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, 0, blobs.count())
}

func TestDeleteMissingDocument(t *testing.T) {
	uc := New(newFakeDocRepo(), newFakeBlobStore(), 0, nil)

	err := uc.Delete(context.Background(), "missing")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestListExpiringUsesWindow(t *testing.T) {
	repo := newFakeDocRepo()
	blobs := newFakeBlobStore()
	uc := New(repo, blobs, 0, nil)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	within := validUpload()
	soon := now.AddDate(0, 0, 10)
	within.FileName = "expiring.pdf"
	within.ExpiryDate = &soon

	beyond := validUpload()
	far := now.AddDate(0, 6, 0)
	beyond.FileName = "fine.pdf"
	beyond.ExpiryDate = &far

	_, err := uc.Upload(context.Background(), within)
	require.NoError(t, err)
	_, err = uc.Upload(context.Background(), beyond)
	require.NoError(t, err)

	docs, err := uc.ListExpiring(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "expiring.pdf", docs[0].FileName)
}
