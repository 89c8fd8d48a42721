package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = `id, user_id, business_profile_id, title, description, category, status,
	due_date, completed_date, priority, portal_url, authority_name, created_at, updated_at`

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.ComplianceTask, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM compliance_tasks
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]domain.ComplianceTask, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM compliance_tasks
	WHERE user_id = $1
	ORDER BY due_date ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) ListAll(ctx context.Context) ([]domain.ComplianceTask, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM compliance_tasks
	ORDER BY due_date ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) Create(ctx context.Context, task *domain.ComplianceTask) (*domain.ComplianceTask, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}

	const query = `
	INSERT INTO compliance_tasks (id, user_id, business_profile_id, title, description, category,
		status, due_date, priority, portal_url, authority_name)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.BusinessProfileID,
		task.Title,
		task.Description,
		task.Category,
		task.Status,
		task.DueDate,
		task.Priority,
		task.PortalURL,
		task.AuthorityName,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.ComplianceTask) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE compliance_tasks
	SET title = $2,
		description = $3,
		category = $4,
		due_date = $5,
		priority = $6,
		portal_url = $7,
		authority_name = $8,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Category,
		task.DueDate,
		task.Priority,
		task.PortalURL,
		task.AuthorityName,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}

// UpdateStatus persists the stored status. completed_date is stamped when
// the task moves to Completed and cleared on any reversion.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	const query = `
	UPDATE compliance_tasks
	SET status = $2,
		completed_date = CASE WHEN $2 = 'Completed' THEN NOW() ELSE NULL END,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	var updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query, id, status).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM compliance_tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func collectTasks(rows pgx.Rows) ([]domain.ComplianceTask, error) {
	var tasks []domain.ComplianceTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.ComplianceTask, error) {
	var task domain.ComplianceTask
	var completed *time.Time

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.BusinessProfileID,
		&task.Title,
		&task.Description,
		&task.Category,
		&task.Status,
		&task.DueDate,
		&completed,
		&task.Priority,
		&task.PortalURL,
		&task.AuthorityName,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.CompletedDate = completed
	return &task, nil
}
