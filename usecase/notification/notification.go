package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/repository"
)

// UseCase turns derived task and document states into human-readable
// notifications and manages the per-user inbox.
type UseCase struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
	now           func() time.Time
}

func New(notifications repository.NotificationRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// EmitTaskDeadline announces an upcoming due date.
func (uc *UseCase) EmitTaskDeadline(ctx context.Context, task *domain.ComplianceTask, daysLeft int) (*domain.Notification, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	msg := fmt.Sprintf("%s is due in %d days (%s).", task.Title, daysLeft, task.DueDate.Format("2 Jan 2006"))
	if daysLeft == 1 {
		msg = fmt.Sprintf("%s is due tomorrow (%s).", task.Title, task.DueDate.Format("2 Jan 2006"))
	}
	return uc.notifications.Create(ctx, &domain.Notification{
		UserID:    task.UserID,
		Type:      domain.NotifyDeadline,
		Title:     "Upcoming deadline: " + task.Title,
		Message:   msg,
		ActionURL: "/compliance",
	})
}

// EmitTaskOverdue announces that a pending task slipped past its due date.
func (uc *UseCase) EmitTaskOverdue(ctx context.Context, task *domain.ComplianceTask) (*domain.Notification, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	return uc.notifications.Create(ctx, &domain.Notification{
		UserID:    task.UserID,
		Type:      domain.NotifyDeadline,
		Title:     "Overdue: " + task.Title,
		Message:   fmt.Sprintf("%s was due on %s and is still pending.", task.Title, task.DueDate.Format("2 Jan 2006")),
		ActionURL: "/compliance",
	})
}

// EmitDocumentExpiry announces an expiring or expired document.
func (uc *UseCase) EmitDocumentExpiry(ctx context.Context, doc *domain.Document) (*domain.Notification, error) {
	if doc == nil || !doc.HasExpiry() {
		return nil, domain.ErrInvalidPayload
	}

	now := uc.now()
	var title, msg string
	switch {
	case domain.IsExpired(doc, now):
		title = "Document expired: " + doc.FileName
		msg = fmt.Sprintf("%s expired on %s. Upload a renewed copy.", doc.FileName, doc.ExpiryDate.Format("2 Jan 2006"))
	case domain.IsExpiringSoon(doc, now):
		title = "Document expiring soon: " + doc.FileName
		msg = fmt.Sprintf("%s expires in %d days (%s).", doc.FileName, domain.DaysUntilExpiry(doc, now), doc.ExpiryDate.Format("2 Jan 2006"))
	default:
		return nil, domain.NewError(domain.ErrCodeInvalid, "document is not expiring")
	}

	return uc.notifications.Create(ctx, &domain.Notification{
		UserID:    doc.UserID,
		Type:      domain.NotifyExpiry,
		Title:     title,
		Message:   msg,
		ActionURL: "/documents",
	})
}

// Broadcast sends the same alert to a list of users (admin surface).
func (uc *UseCase) Broadcast(ctx context.Context, userIDs []string, title, message string) (int, error) {
	if title == "" || message == "" {
		return 0, domain.NewError(domain.ErrCodeInvalid, "title and message are required")
	}
	sent := 0
	for _, userID := range userIDs {
		if _, err := uc.notifications.Create(ctx, &domain.Notification{
			UserID:  userID,
			Type:    domain.NotifyAlert,
			Title:   title,
			Message: message,
		}); err != nil {
			uc.logger.Warn("broadcast delivery failed", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func (uc *UseCase) List(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	return uc.notifications.ListByUser(ctx, userID, limit)
}

func (uc *UseCase) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	return uc.notifications.ListUnread(ctx, userID)
}

func (uc *UseCase) MarkRead(ctx context.Context, id string) error {
	return uc.notifications.MarkRead(ctx, id)
}

func (uc *UseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notifications.MarkAllRead(ctx, userID)
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.notifications.Delete(ctx, id)
}
