package compliance

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

// Checklist orchestrates the load -> filter -> mutate -> reload cycle over
// one user's tasks. It keeps an in-memory snapshot of the last successful
// load; filters derive views from that snapshot without mutating it, and a
// failed mutation leaves the snapshot untouched.
type Checklist struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	userID   string
	snapshot []domain.ComplianceTask
}

func NewChecklist(tasks repository.TaskRepository, logger *zap.Logger) *Checklist {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checklist{
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches the user's tasks (due date ascending) and replaces the
// snapshot. A user with no tasks yields an empty snapshot, not an error.
// When ctx is already cancelled the stale response is discarded so a
// navigated-away view never overwrites current state.
func (c *Checklist) Load(ctx context.Context, userID string) ([]domain.ComplianceTask, error) {
	tasks, err := c.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.mu.Lock()
	c.userID = userID
	c.snapshot = tasks
	c.mu.Unlock()

	return c.Tasks(), nil
}

// Tasks returns a copy of the current snapshot.
func (c *Checklist) Tasks() []domain.ComplianceTask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.ComplianceTask(nil), c.snapshot...)
}

// ApplyFilter derives a filtered view of the snapshot: exact match on
// effective status unless statusFilter is "All", intersected with a
// case-insensitive substring match on title or category.
func (c *Checklist) ApplyFilter(statusFilter, search string) []domain.ComplianceTask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FilterTasks(c.snapshot, statusFilter, search, c.now())
}

// SetStatus persists the new stored status and reloads the snapshot so the
// view reflects server-computed fields (completed date stamping). On
// persistence failure the prior snapshot survives unchanged.
func (c *Checklist) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) ([]domain.ComplianceTask, error) {
	if !domain.ValidStoredStatus(status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "status must be Pending or Completed")
	}

	if err := c.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		c.logger.Warn("status update failed, keeping stale snapshot",
			zap.String("task_id", taskID),
			zap.Error(err))
		return nil, err
	}

	c.mu.RLock()
	userID := c.userID
	c.mu.RUnlock()

	return c.Load(ctx, userID)
}

// Stats folds the snapshot into counters at the current instant.
func (c *Checklist) Stats() domain.TaskStatsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.TaskStats(c.snapshot, c.now())
}

// Score returns the compliance score for the snapshot.
func (c *Checklist) Score() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.ComplianceScore(c.snapshot)
}

// FilterTasks is the shared filter behind user and admin views.
func FilterTasks(tasks []domain.ComplianceTask, statusFilter, search string, now time.Time) []domain.ComplianceTask {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]domain.ComplianceTask, 0, len(tasks))
	for i := range tasks {
		task := tasks[i]
		if statusFilter != "" && statusFilter != StatusFilterAll {
			if string(domain.EffectiveStatus(&task, now)) != statusFilter {
				continue
			}
		}
		if needle != "" {
			title := strings.ToLower(task.Title)
			category := strings.ToLower(string(task.Category))
			if !strings.Contains(title, needle) && !strings.Contains(category, needle) {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}
