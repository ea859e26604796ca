package models

import "time"

// BaseModel is gorm.Model without soft deletes. Lifecycle rows (applications,
// assignments, submissions) must be gone for real once consumed or cascaded,
// otherwise the composite unique indexes would keep matching dead rows.
type BaseModel struct {
	ID        uint `gorm:"primarykey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
