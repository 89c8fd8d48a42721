package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijacomply/backend/domain"
)

func TestDefaultTasksPerBusinessType(t *testing.T) {
	now := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		businessType domain.BusinessType
		wantCount    int
	}{
		{domain.BusinessTypeLimitedCompany, 5},
		{domain.BusinessTypeBusinessName, 2},
		{domain.BusinessTypePartnership, 2},
		{domain.BusinessTypeNGO, 2},
		{domain.BusinessTypeIncorporatedTrustees, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.businessType), func(t *testing.T) {
			tasks := DefaultTasks("u1", "bp1", tt.businessType, now)
			require.Len(t, tasks, tt.wantCount)

			assert.Equal(t, "CAC Annual Returns", tasks[0].Title)
			assert.Equal(t, "TIN Registration", tasks[1].Title)

			if tt.wantCount == 5 {
				assert.Equal(t, "VAT Registration", tasks[2].Title)
				assert.Equal(t, "PAYE Remittance", tasks[3].Title)
				assert.Equal(t, "Pension Remittance", tasks[4].Title)
			}
		})
	}
}

func TestDefaultTasksDueDates(t *testing.T) {
	now := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)
	tasks := DefaultTasks("u1", "bp1", domain.BusinessTypeLimitedCompany, now)

	byTitle := make(map[string]domain.ComplianceTask, len(tasks))
	for _, task := range tasks {
		byTitle[task.Title] = task
	}

	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), byTitle["CAC Annual Returns"].DueDate)
	assert.Equal(t, now.Add(30*24*time.Hour), byTitle["TIN Registration"].DueDate)
	assert.Equal(t, now.Add(60*24*time.Hour), byTitle["VAT Registration"].DueDate)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), byTitle["PAYE Remittance"].DueDate)
	assert.Equal(t, byTitle["PAYE Remittance"].DueDate, byTitle["Pension Remittance"].DueDate)

	assert.Equal(t, domain.PriorityHigh, byTitle["CAC Annual Returns"].Priority)
	assert.Equal(t, domain.PriorityHigh, byTitle["TIN Registration"].Priority)
	assert.Equal(t, domain.PriorityMedium, byTitle["VAT Registration"].Priority)
}

func TestDefaultTasksMonthRollsAcrossYear(t *testing.T) {
	december := time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC)
	tasks := DefaultTasks("u1", "bp1", domain.BusinessTypeLimitedCompany, december)

	for _, task := range tasks {
		if task.Category == domain.CategoryPAYE || task.Category == domain.CategoryPension {
			assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), task.DueDate, task.Title)
		}
	}
}

func TestGenerateDefaultsPersistsSequentially(t *testing.T) {
	repo := newFakeTaskRepo()
	uc := New(repo, nil)

	created, err := uc.GenerateDefaults(context.Background(), "u1", "bp1", domain.BusinessTypeLimitedCompany)
	require.NoError(t, err)
	assert.Len(t, created, 5)
	assert.Len(t, repo.createdSeq, 5)

	for _, task := range created {
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, domain.StatusPending, task.Status)
	}
}

func TestGenerateDefaultsPartialFailure(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.failCreateAt = 3
	uc := New(repo, nil)

	created, err := uc.GenerateDefaults(context.Background(), "u1", "bp1", domain.BusinessTypeLimitedCompany)
	require.Error(t, err)

	var partial *PartialError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 2, partial.Created)

	// Tasks created before the failure stay persisted; there is no rollback.
	assert.Len(t, created, 2)
	assert.Len(t, repo.createdSeq, 2)
}

func TestGenerateDefaultsRejectsUnknownType(t *testing.T) {
	uc := New(newFakeTaskRepo(), nil)

	_, err := uc.GenerateDefaults(context.Background(), "u1", "bp1", domain.BusinessType("Sole Trader"))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
