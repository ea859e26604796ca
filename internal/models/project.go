package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	OrgID      uint   `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	Deadline   string
	TotalValue float64 `gorm:"not null;default:0"` // fixed at creation, sum of milestone prices

	// Relationships
	Org          User          `gorm:"foreignKey:OrgID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Milestones   []Milestone   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Applications []Application `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignments  []Assignment  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Attachments  []Attachment  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
