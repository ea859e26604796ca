package models

const ApplicationStatusApplied = "applied"

// Application is a student's pending request to work on a project. The assign
// transition deletes the row outright rather than flipping its status.
type Application struct {
	BaseModel

	ProjectID uint   `gorm:"not null;uniqueIndex:idx_application_project_student"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_application_project_student"`
	Message   string
	Status    string `gorm:"not null;default:applied"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Student User    `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
