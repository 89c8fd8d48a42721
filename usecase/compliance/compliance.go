package compliance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

// StatusFilterAll matches every effective status.
const StatusFilterAll = "All"

// UseCase owns compliance task operations for one deployment.
type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.ComplianceTask, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) ListTasks(ctx context.Context, userID string) ([]domain.ComplianceTask, error) {
	return uc.tasks.ListByUser(ctx, userID)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.ComplianceTask) (*domain.ComplianceTask, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}
	task.Status = domain.StatusPending
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.ComplianceTask) (*domain.ComplianceTask, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetTaskStatus persists a stored status transition. Only Pending and
// Completed may be written; Overdue exists purely as a derived view.
func (uc *UseCase) SetTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if !domain.ValidStoredStatus(status) {
		return domain.NewError(domain.ErrCodeInvalid, "status must be Pending or Completed")
	}
	return uc.tasks.UpdateStatus(ctx, id, status)
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	return uc.tasks.Delete(ctx, id)
}

// ListAllTasks returns every task in the system, filtered by effective
// status when statusFilter is not "All". Admin views share the exact
// derivation used by the owner-facing checklist, so both agree on what
// counts as overdue.
func (uc *UseCase) ListAllTasks(ctx context.Context, statusFilter string) ([]domain.ComplianceTask, error) {
	tasks, err := uc.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterTasks(tasks, statusFilter, "", uc.now()), nil
}

// Stats folds the user's tasks into counters at the current instant.
func (uc *UseCase) Stats(ctx context.Context, userID string) (domain.TaskStatsSnapshot, error) {
	tasks, err := uc.tasks.ListByUser(ctx, userID)
	if err != nil {
		return domain.TaskStatsSnapshot{}, err
	}
	return domain.TaskStats(tasks, uc.now()), nil
}

// Score returns the user's compliance score (0 when no tasks exist).
func (uc *UseCase) Score(ctx context.Context, userID string) (int, error) {
	tasks, err := uc.tasks.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return domain.ComplianceScore(tasks), nil
}

func validateTask(task *domain.ComplianceTask) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if task.Title == "" {
		return domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	if !domain.ValidCategory(task.Category) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown task category")
	}
	if !domain.ValidPriority(task.Priority) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown task priority")
	}
	if task.DueDate.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "due date is required")
	}
	if task.UserID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "user id is required")
	}
	return nil
}
