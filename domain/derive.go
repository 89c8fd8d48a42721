package domain

import (
	"math"
	"time"
)

// Derivation of effective task status and document expiry flags. These are
// pure functions over plain instants: nothing here mutates or persists
// state, and the stored status field is never auto-flipped to Overdue.

// ExpiryWindowDays is the look-ahead window for "expiring soon" documents.
const ExpiryWindowDays = 30

// IsOverdue reports whether the task's due date has passed without
// completion. A due date exactly equal to now is not overdue.
func IsOverdue(task *ComplianceTask, now time.Time) bool {
	if task == nil || task.Status == StatusCompleted {
		return false
	}
	return task.DueDate.Before(now)
}

// EffectiveStatus computes the status shown to the user. Completed always
// wins; otherwise an elapsed due date presents as Overdue.
func EffectiveStatus(task *ComplianceTask, now time.Time) TaskStatus {
	if task == nil {
		return StatusPending
	}
	if task.Status == StatusCompleted {
		return StatusCompleted
	}
	if IsOverdue(task, now) {
		return StatusOverdue
	}
	return StatusPending
}

// DaysUntilExpiry returns the whole-day distance to a document's expiry,
// rounded up. Documents without an expiry report 0.
func DaysUntilExpiry(doc *Document, now time.Time) int {
	if doc == nil || !doc.HasExpiry() {
		return 0
	}
	return int(math.Ceil(doc.ExpiryDate.Sub(now).Hours() / 24))
}

// IsExpired reports whether the document's expiry instant has passed.
func IsExpired(doc *Document, now time.Time) bool {
	if doc == nil || !doc.HasExpiry() {
		return false
	}
	return doc.ExpiryDate.Before(now)
}

// IsExpiringSoon reports whether the document expires strictly within the
// next ExpiryWindowDays. Expired documents are excluded, so the two flags
// are mutually exclusive.
func IsExpiringSoon(doc *Document, now time.Time) bool {
	if doc == nil || !doc.HasExpiry() {
		return false
	}
	days := DaysUntilExpiry(doc, now)
	return days > 0 && days <= ExpiryWindowDays
}

// TaskStatsSnapshot is a fold over a task list at one instant.
type TaskStatsSnapshot struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// TaskStats recomputes counters from scratch on every call; nothing is
// incrementally maintained, so the numbers cannot drift from the list.
func TaskStats(tasks []ComplianceTask, now time.Time) TaskStatsSnapshot {
	stats := TaskStatsSnapshot{Total: len(tasks)}
	for i := range tasks {
		switch EffectiveStatus(&tasks[i], now) {
		case StatusCompleted:
			stats.Completed++
		case StatusOverdue:
			stats.Overdue++
		default:
			stats.Pending++
		}
	}
	return stats
}

// ComplianceScore is the completed percentage rounded to the nearest
// integer. An empty list scores 0.
func ComplianceScore(tasks []ComplianceTask) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for i := range tasks {
		if tasks[i].Status == StatusCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}
