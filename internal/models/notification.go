package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification is the persistent log of fire-and-forget dispatches. The
// primary operation never waits on these rows.
type Notification struct {
	BaseModel

	Kind      string `gorm:"not null"`
	Recipient string `gorm:"not null"`
	Status    string `gorm:"not null;default:queued"`
	Payload   datatypes.JSON
	SentAt    *time.Time
}
