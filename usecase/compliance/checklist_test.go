package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijacomply/backend/domain"
)

func seedTask(t *testing.T, repo *fakeTaskRepo, title string, category domain.TaskCategory, status domain.TaskStatus, due time.Time) domain.ComplianceTask {
	t.Helper()
	task := &domain.ComplianceTask{
		UserID:   "u1",
		Title:    title,
		Category: category,
		Status:   status,
		DueDate:  due,
		Priority: domain.PriorityMedium,
	}
	created, err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	return *created
}

func TestChecklistLoadOrdersByDueDate(t *testing.T) {
	repo := newFakeTaskRepo()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedTask(t, repo, "Later", domain.CategoryOther, domain.StatusPending, now.AddDate(0, 2, 0))
	seedTask(t, repo, "Sooner", domain.CategoryOther, domain.StatusPending, now.AddDate(0, 0, 3))

	cl := NewChecklist(repo, nil)
	tasks, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Sooner", tasks[0].Title)
	assert.Equal(t, "Later", tasks[1].Title)
}

func TestChecklistLoadEmptyOwner(t *testing.T) {
	cl := NewChecklist(newFakeTaskRepo(), nil)

	tasks, err := cl.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 0, cl.Score())
	assert.Equal(t, domain.TaskStatsSnapshot{}, cl.Stats())
}

func TestChecklistApplyFilter(t *testing.T) {
	repo := newFakeTaskRepo()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	seedTask(t, repo, "TIN Registration", domain.CategoryTax, domain.StatusCompleted, now.AddDate(0, 0, -5))
	seedTask(t, repo, "Withholding Tax Filing", domain.CategoryTax, domain.StatusPending, now.AddDate(0, 0, 10))
	seedTask(t, repo, "CAC Annual Returns", domain.CategoryCAC, domain.StatusPending, now.AddDate(0, 0, -2))
	seedTask(t, repo, "Business Premises Levy", domain.CategoryLicense, domain.StatusCompleted, now.AddDate(0, 0, 30))

	cl := NewChecklist(repo, nil)
	cl.now = func() time.Time { return now }

	_, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)

	t.Run("status only", func(t *testing.T) {
		overdue := cl.ApplyFilter(string(domain.StatusOverdue), "")
		require.Len(t, overdue, 1)
		assert.Equal(t, "CAC Annual Returns", overdue[0].Title)
	})

	t.Run("status and search intersect", func(t *testing.T) {
		got := cl.ApplyFilter(string(domain.StatusCompleted), "tax")
		require.Len(t, got, 1)
		assert.Equal(t, "TIN Registration", got[0].Title)
	})

	t.Run("search is case-insensitive over title or category", func(t *testing.T) {
		got := cl.ApplyFilter(StatusFilterAll, "TAX")
		assert.Len(t, got, 2)
	})

	t.Run("filter never mutates the snapshot", func(t *testing.T) {
		cl.ApplyFilter(string(domain.StatusCompleted), "nothing-matches")
		assert.Len(t, cl.Tasks(), 4)
	})
}

func TestChecklistSetStatusRoundTrip(t *testing.T) {
	repo := newFakeTaskRepo()
	now := time.Now()
	task := seedTask(t, repo, "PAYE Remittance", domain.CategoryPAYE, domain.StatusPending, now.AddDate(0, 1, 0))

	cl := NewChecklist(repo, nil)
	_, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)

	tasks, err := cl.SetStatus(context.Background(), task.ID, domain.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, domain.StatusCompleted, tasks[0].Status)
	require.NotNil(t, tasks[0].CompletedDate)
	assert.False(t, tasks[0].CompletedDate.IsZero())
}

func TestChecklistSetStatusReversionClearsCompletedDate(t *testing.T) {
	repo := newFakeTaskRepo()
	task := seedTask(t, repo, "VAT Filing", domain.CategoryVAT, domain.StatusPending, time.Now().AddDate(0, 0, 14))

	cl := NewChecklist(repo, nil)
	_, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)

	_, err = cl.SetStatus(context.Background(), task.ID, domain.StatusCompleted)
	require.NoError(t, err)

	tasks, err := cl.SetStatus(context.Background(), task.ID, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].CompletedDate)
}

func TestChecklistSetStatusFailureKeepsSnapshot(t *testing.T) {
	repo := newFakeTaskRepo()
	task := seedTask(t, repo, "Pension Remittance", domain.CategoryPension, domain.StatusPending, time.Now().AddDate(0, 1, 0))

	cl := NewChecklist(repo, nil)
	before, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)

	repo.failUpdate = true
	_, err = cl.SetStatus(context.Background(), task.ID, domain.StatusCompleted)
	require.Error(t, err)

	assert.Equal(t, before, cl.Tasks(), "failed persist must not touch the snapshot")
}

func TestChecklistSetStatusRejectsOverdue(t *testing.T) {
	cl := NewChecklist(newFakeTaskRepo(), nil)

	_, err := cl.SetStatus(context.Background(), "t1", domain.StatusOverdue)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestChecklistCancelledLoadKeepsSnapshot(t *testing.T) {
	repo := newFakeTaskRepo()
	seedTask(t, repo, "TIN Registration", domain.CategoryTax, domain.StatusPending, time.Now().AddDate(0, 0, 7))

	cl := NewChecklist(repo, nil)
	before, err := cl.Load(context.Background(), "u1")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cl.Load(cancelled, "someone-else")
	require.Error(t, err)
	assert.Equal(t, before, cl.Tasks())
}
