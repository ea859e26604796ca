package models

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusAccepted  = "accepted"
	SubmissionStatusDeclined  = "declined"
)

// Submission holds at most one current row per (milestone, assignment) pair.
// Resubmitting after a decline reuses the row and flips it back to submitted.
type Submission struct {
	BaseModel

	MilestoneID   uint   `gorm:"not null;uniqueIndex:idx_submission_milestone_assignment"`
	AssignmentID  uint   `gorm:"not null;uniqueIndex:idx_submission_milestone_assignment"`
	SubmissionURL string `gorm:"not null"`
	Status        string `gorm:"not null;default:submitted"`

	// Relationships
	Milestone  Milestone  `gorm:"foreignKey:MilestoneID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignment Assignment `gorm:"foreignKey:AssignmentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
