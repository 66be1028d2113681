package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationRequestedTopic = "elms.notification.requested.v1"
	NotificationRequestedType  = "notification.requested"
)

// Notification types stored on the notifications row.
const (
	NotificationLeaveApplied  = "leave_applied"
	NotificationLeavePending  = "leave_pending"
	NotificationLeaveApproved = "leave_approved"
	NotificationLeaveRejected = "leave_rejected"
)

// NotificationRequested asks the notification sink to store one message for one user.
// EventID doubles as the idempotency key of the stored row.
type NotificationRequested struct {
	EventID    uuid.UUID  `json:"event_id"`
	EventType  string     `json:"event_type"`
	UserID     uuid.UUID  `json:"user_id"`
	Message    string     `json:"message"`
	Type       string     `json:"type"`
	LeaveID    *uuid.UUID `json:"leave_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewNotificationRequested(userID uuid.UUID, message, notificationType string, leaveID *uuid.UUID) NotificationRequested {
	return NotificationRequested{
		EventID:    uuid.New(),
		EventType:  NotificationRequestedType,
		UserID:     userID,
		Message:    message,
		Type:       notificationType,
		LeaveID:    leaveID,
		OccurredAt: time.Now().UTC(),
	}
}

// Notify fans one message out to every recipient.
func Notify(recipients []uuid.UUID, message, notificationType string, leaveID *uuid.UUID) []NotificationRequested {
	out := make([]NotificationRequested, 0, len(recipients))
	for _, id := range recipients {
		out = append(out, NewNotificationRequested(id, message, notificationType, leaveID))
	}
	return out
}
