package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func taskWith(status TaskStatus, due time.Time) *ComplianceTask {
	return &ComplianceTask{
		ID:       "t1",
		UserID:   "u1",
		Title:    "CAC Annual Returns",
		Category: CategoryCAC,
		Status:   status,
		DueDate:  due,
		Priority: PriorityHigh,
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task *ComplianceTask
		want bool
	}{
		{
			name: "pending past due",
			task: taskWith(StatusPending, now.Add(-time.Hour)),
			want: true,
		},
		{
			name: "pending future due",
			task: taskWith(StatusPending, now.Add(time.Hour)),
			want: false,
		},
		{
			name: "due exactly now is not overdue",
			task: taskWith(StatusPending, now),
			want: false,
		},
		{
			name: "completed long past due",
			task: taskWith(StatusCompleted, now.AddDate(-2, 0, 0)),
			want: false,
		},
		{
			name: "nil task",
			task: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.task, now))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task *ComplianceTask
		want TaskStatus
	}{
		{"completed wins over elapsed due", taskWith(StatusCompleted, now.Add(-48*time.Hour)), StatusCompleted},
		{"pending with future due", taskWith(StatusPending, now.Add(48*time.Hour)), StatusPending},
		{"pending with elapsed due presents overdue", taskWith(StatusPending, now.Add(-time.Minute)), StatusOverdue},
		{"due at now stays pending", taskWith(StatusPending, now), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveStatus(tt.task, now))
		})
	}
}

func TestEffectiveStatusNeverMutatesStoredStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	task := taskWith(StatusPending, now.Add(-time.Hour))

	assert.Equal(t, StatusOverdue, EffectiveStatus(task, now))
	assert.Equal(t, StatusPending, task.Status)
}

func TestDocumentExpiryFlags(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	docWith := func(expiry time.Time) *Document {
		return &Document{ID: "d1", UserID: "u1", FileName: "cert.pdf", ExpiryDate: &expiry}
	}

	tests := []struct {
		name         string
		doc          *Document
		wantSoon    bool
		wantExpired bool
	}{
		{"expires in 10 days", docWith(now.AddDate(0, 0, 10)), true, false},
		{"expired yesterday", docWith(now.AddDate(0, 0, -1)), false, true},
		{"expires in 31 days", docWith(now.Add(31*24*time.Hour)), false, false},
		{"expires at window edge", docWith(now.Add(30*24*time.Hour)), true, false},
		{"no expiry", &Document{ID: "d2"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSoon, IsExpiringSoon(tt.doc, now), "expiring soon")
			assert.Equal(t, tt.wantExpired, IsExpired(tt.doc, now), "expired")
			if tt.wantExpired {
				assert.False(t, IsExpiringSoon(tt.doc, now), "flags must be mutually exclusive")
			}
		})
	}
}

func TestComplianceScore(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		tasks []ComplianceTask
		want  int
	}{
		{"empty list scores zero", nil, 0},
		{
			"three of four completed",
			[]ComplianceTask{
				*taskWith(StatusCompleted, now),
				*taskWith(StatusCompleted, now),
				*taskWith(StatusCompleted, now),
				*taskWith(StatusPending, now),
			},
			75,
		},
		{
			"one of three rounds to 33",
			[]ComplianceTask{
				*taskWith(StatusCompleted, now),
				*taskWith(StatusPending, now),
				*taskWith(StatusPending, now),
			},
			33,
		},
		{
			"all completed",
			[]ComplianceTask{*taskWith(StatusCompleted, now)},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComplianceScore(tt.tasks))
		})
	}
}

func TestTaskStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tasks := []ComplianceTask{
		*taskWith(StatusCompleted, now.AddDate(0, 0, -10)),
		*taskWith(StatusPending, now.AddDate(0, 0, -1)),
		*taskWith(StatusPending, now.AddDate(0, 0, 5)),
		*taskWith(StatusPending, now.AddDate(0, 0, 9)),
	}

	stats := TaskStats(tasks, now)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
}
