package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijacomply/backend/domain"
)

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now()
	f.items = append(f.items, *n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for i := len(f.items) - 1; i >= 0 && len(out) < limit; i-- {
		if f.items[i].UserID == userID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListUnread(_ context.Context, userID string) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for _, n := range f.items {
		if n.UserID == userID && !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].UserID == userID {
			f.items[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func TestEmitTaskOverdue(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := New(repo, nil)

	task := &domain.ComplianceTask{
		UserID:  "u1",
		Title:   "CAC Annual Returns",
		DueDate: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:  domain.StatusPending,
	}

	n, err := uc.EmitTaskOverdue(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, domain.NotifyDeadline, n.Type)
	assert.Equal(t, "Overdue: CAC Annual Returns", n.Title)
	assert.Contains(t, n.Message, "31 Mar 2025")
	assert.False(t, n.Read)
}

func TestEmitDocumentExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	docWith := func(expiry time.Time) *domain.Document {
		return &domain.Document{UserID: "u1", FileName: "license.pdf", ExpiryDate: &expiry}
	}

	t.Run("expiring soon", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		uc := New(repo, nil)
		uc.now = func() time.Time { return now }

		n, err := uc.EmitDocumentExpiry(context.Background(), docWith(now.AddDate(0, 0, 10)))
		require.NoError(t, err)
		assert.Equal(t, domain.NotifyExpiry, n.Type)
		assert.Contains(t, n.Title, "expiring soon")
		assert.Contains(t, n.Message, "10 days")
	})

	t.Run("already expired", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		uc := New(repo, nil)
		uc.now = func() time.Time { return now }

		n, err := uc.EmitDocumentExpiry(context.Background(), docWith(now.AddDate(0, 0, -1)))
		require.NoError(t, err)
		assert.Contains(t, n.Title, "expired")
	})

	t.Run("not expiring is rejected", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		uc := New(repo, nil)
		uc.now = func() time.Time { return now }

		_, err := uc.EmitDocumentExpiry(context.Background(), docWith(now.AddDate(1, 0, 0)))
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("no expiry is rejected", func(t *testing.T) {
		uc := New(&fakeNotificationRepo{}, nil)
		_, err := uc.EmitDocumentExpiry(context.Background(), &domain.Document{UserID: "u1"})
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})
}

func TestBroadcast(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := New(repo, nil)

	sent, err := uc.Broadcast(context.Background(), []string{"u1", "u2", "u3"}, "Maintenance", "The portal is down on Sunday.")
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	unread, err := uc.ListUnread(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, domain.NotifyAlert, unread[0].Type)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := New(repo, nil)

	task := &domain.ComplianceTask{UserID: "u1", Title: "TIN Registration", DueDate: time.Now()}
	n, err := uc.EmitTaskDeadline(context.Background(), task, 3)
	require.NoError(t, err)
	assert.Contains(t, n.Message, "3 days")

	require.NoError(t, uc.MarkRead(context.Background(), n.ID))

	unread, err := uc.ListUnread(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, unread)
}
