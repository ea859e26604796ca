package models

const AssignmentStatusActive = "active"

type Assignment struct {
	BaseModel

	ProjectID       uint `gorm:"not null;uniqueIndex:idx_assignment_project_student"`
	StudentID       uint `gorm:"not null;uniqueIndex:idx_assignment_project_student"`
	AssignedByOrgID uint `gorm:"not null;index"`
	RoleLabel       string
	Status          string `gorm:"not null;default:active"`

	// Relationships
	Project       Project      `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Student       User         `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedByOrg User         `gorm:"foreignKey:AssignedByOrgID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Submissions   []Submission `gorm:"foreignKey:AssignmentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
