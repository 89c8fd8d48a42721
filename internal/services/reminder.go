package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
	notificationUC "github.com/naijacomply/backend/usecase/notification"
)

// ReminderConfig controls how frequently the scan runs and how far ahead
// deadline reminders look.
type ReminderConfig struct {
	Interval       time.Duration
	DeadlineWindow int
}

// Reminder periodically scans every task and document and emits deadline,
// overdue and expiry notifications. Each finding is announced once per
// process lifetime; duplicates across restarts are acceptable noise.
type Reminder struct {
	tasks    repository.TaskRepository
	docs     repository.DocumentRepository
	notifier *notificationUC.UseCase
	logger   *zap.Logger
	cron     *cron.Cron
	cfg      ReminderConfig

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewReminder(
	tasks repository.TaskRepository,
	docs repository.DocumentRepository,
	notifier *notificationUC.UseCase,
	logger *zap.Logger,
	cfg ReminderConfig,
) *Reminder {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.DeadlineWindow <= 0 {
		cfg.DeadlineWindow = 7
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Reminder{
		tasks:    tasks,
		docs:     docs,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		cron:     cron.New(cron.WithSeconds()),
		seen:     make(map[string]struct{}),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := r.Scan(ctx, time.Now()); err != nil {
			r.logger.Error("reminder scan failed", zap.Error(err))
		}
	})

	return r
}

// Start launches the cron scheduler.
func (r *Reminder) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("reminder scheduler started", zap.Duration("interval", r.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (r *Reminder) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("reminder scheduler stopped")
}

// Scan walks all tasks and documents once, emitting notifications for
// anything due within the window, overdue, or expiring.
func (r *Reminder) Scan(ctx context.Context, now time.Time) error {
	if err := r.scanTasks(ctx, now); err != nil {
		return err
	}
	return r.scanDocuments(ctx, now)
}

func (r *Reminder) scanTasks(ctx context.Context, now time.Time) error {
	tasks, err := r.tasks.ListAll(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		task := &tasks[i]
		if task.Status == domain.StatusCompleted {
			continue
		}

		if domain.IsOverdue(task, now) {
			if !r.once("task-overdue:" + task.ID) {
				continue
			}
			if _, err := r.notifier.EmitTaskOverdue(ctx, task); err != nil {
				r.logger.Warn("failed to emit overdue notification",
					zap.String("task_id", task.ID), zap.Error(err))
			}
			continue
		}

		daysLeft := int(task.DueDate.Sub(now).Hours() / 24)
		if daysLeft >= 0 && daysLeft <= r.cfg.DeadlineWindow {
			if !r.once("task-deadline:" + task.ID) {
				continue
			}
			if _, err := r.notifier.EmitTaskDeadline(ctx, task, daysLeft); err != nil {
				r.logger.Warn("failed to emit deadline notification",
					zap.String("task_id", task.ID), zap.Error(err))
			}
		}
	}
	return nil
}

func (r *Reminder) scanDocuments(ctx context.Context, now time.Time) error {
	docs, err := r.docs.ListAll(ctx)
	if err != nil {
		return err
	}

	for i := range docs {
		doc := &docs[i]
		if !domain.IsExpired(doc, now) && !domain.IsExpiringSoon(doc, now) {
			continue
		}
		key := "doc-expiring:" + doc.ID
		if domain.IsExpired(doc, now) {
			key = "doc-expired:" + doc.ID
		}
		if !r.once(key) {
			continue
		}
		if _, err := r.notifier.EmitDocumentExpiry(ctx, doc); err != nil {
			r.logger.Warn("failed to emit expiry notification",
				zap.String("document_id", doc.ID), zap.Error(err))
		}
	}
	return nil
}

// once records the key and reports whether this is its first occurrence.
func (r *Reminder) once(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[key]; ok {
		return false
	}
	r.seen[key] = struct{}{}
	return true
}
