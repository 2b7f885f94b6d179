package model

import "time"

type NotificationType string

const (
	NotificationTypeDigest    NotificationType = "digest"
	NotificationTypeStaleness NotificationType = "staleness"
	NotificationTypePattern   NotificationType = "pattern"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeDigest, NotificationTypeStaleness, NotificationTypePattern:
		return true
	default:
		return false
	}
}

// Notification is queued server-side by the worker. read and completed
// are independent flags: a notification may be read but not completed.
// SuppressedBy references the entity that superseded this one; the
// client only displays it.
type Notification struct {
	ID           int64            `json:"id"`
	Type         NotificationType `json:"type"`
	Content      string           `json:"content"`
	Read         bool             `json:"read"`
	ReadAt       *time.Time       `json:"read_at,omitempty"`
	SuppressedBy string           `json:"suppressed_by,omitempty"`
	Completed    bool             `json:"completed,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func CountUnread(notifications []Notification) int {
	n := 0
	for _, item := range notifications {
		if !item.Read {
			n++
		}
	}
	return n
}
