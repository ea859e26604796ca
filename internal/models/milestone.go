package models

type Milestone struct {
	BaseModel

	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null;check:price >= 0"`
	DueDate     string

	// Relationships
	Project     Project      `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Submissions []Submission `gorm:"foreignKey:MilestoneID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
