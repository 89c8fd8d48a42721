package domain

import "time"

// TaskStatus is the persisted lifecycle state of a compliance task.
// Overdue is never written by the application; it survives as a constant
// because effective-status derivation presents it (see derive.go).
type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
	StatusOverdue   TaskStatus = "Overdue"
)

// TaskCategory classifies a task by the regulatory obligation it tracks.
type TaskCategory string

const (
	CategoryCAC     TaskCategory = "CAC"
	CategoryTax     TaskCategory = "Tax"
	CategoryPAYE    TaskCategory = "PAYE"
	CategoryVAT     TaskCategory = "VAT"
	CategoryPension TaskCategory = "Pension"
	CategoryLicense TaskCategory = "License"
	CategoryOther   TaskCategory = "Other"
)

// TaskPriority ranks how urgent an obligation is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// ComplianceTask represents a single regulatory obligation owned by a user.
type ComplianceTask struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	BusinessProfileID string       `json:"business_profile_id"`
	Title             string       `json:"title"`
	Description       string       `json:"description,omitempty"`
	Category          TaskCategory `json:"category"`
	Status            TaskStatus   `json:"status"`
	DueDate           time.Time    `json:"due_date"`
	CompletedDate     *time.Time   `json:"completed_date,omitempty"`
	Priority          TaskPriority `json:"priority"`
	PortalURL         string       `json:"portal_url,omitempty"`
	AuthorityName     string       `json:"authority_name,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (t *ComplianceTask) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// ValidCategory reports whether c is one of the known task categories.
func ValidCategory(c TaskCategory) bool {
	switch c {
	case CategoryCAC, CategoryTax, CategoryPAYE, CategoryVAT, CategoryPension, CategoryLicense, CategoryOther:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStoredStatus reports whether s may be persisted. Overdue is a
// derived presentation state and is rejected for writes.
func ValidStoredStatus(s TaskStatus) bool {
	return s == StatusPending || s == StatusCompleted
}
