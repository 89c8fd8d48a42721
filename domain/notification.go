package domain

import "time"

// NotificationType tags the origin of a notification.
type NotificationType string

const (
	NotifyDeadline NotificationType = "deadline"
	NotifyExpiry   NotificationType = "expiry"
	NotifyAlert    NotificationType = "alert"
	NotifySystem   NotificationType = "system"
)

// Notification is a human-readable message delivered to one user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	ActionURL string           `json:"action_url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
