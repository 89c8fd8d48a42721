package compliance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

// fakeTaskRepo is an in-memory TaskRepository honoring the same contracts
// as the Postgres implementation: due-date-ascending listing, completed
// date stamping, NotFound sentinels.
type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]domain.ComplianceTask

	failCreate   bool
	failCreateAt int // fail the n-th create when > 0
	failUpdate   bool
	failList     bool
	createdSeq   []string
}

var errStoreDown = domain.WrapError(domain.ErrCodeInternal, "store unavailable", nil)

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]domain.ComplianceTask)}
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.ComplianceTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (f *fakeTaskRepo) ListByUser(_ context.Context, userID string) ([]domain.ComplianceTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errStoreDown
	}
	var out []domain.ComplianceTask
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (f *fakeTaskRepo) ListAll(_ context.Context) ([]domain.ComplianceTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ComplianceTask
	for _, task := range f.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.ComplianceTask) (*domain.ComplianceTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return nil, errStoreDown
	}
	if f.failCreateAt > 0 && len(f.createdSeq)+1 == f.failCreateAt {
		return nil, errStoreDown
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	f.tasks[task.ID] = *task
	f.createdSeq = append(f.createdSeq, task.ID)
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *domain.ComplianceTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Description = task.Description
	stored.Category = task.Category
	stored.DueDate = task.DueDate
	stored.Priority = task.Priority
	stored.UpdatedAt = time.Now()
	f.tasks[task.ID] = stored
	return nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errStoreDown
	}
	task, ok := f.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Status = status
	if status == domain.StatusCompleted {
		now := time.Now()
		task.CompletedDate = &now
	} else {
		task.CompletedDate = nil
	}
	task.UpdatedAt = time.Now()
	f.tasks[id] = task
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)
