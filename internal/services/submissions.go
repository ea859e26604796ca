package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

// Submissions tracks milestone work: submitted -> accepted | declined, with
// decline reopening the pair for resubmission.
type Submissions struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubmissions(db *gorm.DB, log *zap.Logger) *Submissions {
	return &Submissions{db: db, log: log}
}

// Submit records work for a milestone under an assignment the calling student
// holds. At most one row exists per (milestone, assignment): a declined
// submission is reused and flipped back to submitted, an accepted one is
// final.
func (s *Submissions) Submit(student *models.User, assignmentID, milestoneID uint, submissionURL string) (*models.Submission, error) {
	submissionURL = strings.TrimSpace(submissionURL)
	if assignmentID == 0 || milestoneID == 0 || submissionURL == "" {
		return nil, apperr.Invalid("Assignment, milestone and submission URL are required")
	}

	var assignment models.Assignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment not found")
		}
		return nil, apperr.Internal(err)
	}
	if assignment.StudentID != student.ID {
		return nil, apperr.Forbidden("Assignment belongs to another student")
	}

	var milestone models.Milestone
	if err := s.db.First(&milestone, milestoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Milestone not found")
		}
		return nil, apperr.Internal(err)
	}
	if milestone.ProjectID != assignment.ProjectID {
		return nil, apperr.NotFound("Milestone does not belong to the assigned project")
	}

	var submission models.Submission
	err := s.db.
		Where("milestone_id = ? AND assignment_id = ?", milestoneID, assignmentID).
		First(&submission).Error

	switch {
	case err == nil:
		if submission.Status == models.SubmissionStatusAccepted {
			return nil, apperr.Conflict("Milestone already accepted")
		}
		submission.SubmissionURL = submissionURL
		submission.Status = models.SubmissionStatusSubmitted
		if err := s.db.Save(&submission).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		submission = models.Submission{
			MilestoneID:   milestoneID,
			AssignmentID:  assignmentID,
			SubmissionURL: submissionURL,
			Status:        models.SubmissionStatusSubmitted,
		}
		if err := s.db.Create(&submission).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	default:
		return nil, apperr.Internal(err)
	}

	s.log.Info("milestone submitted",
		zap.Uint("milestone_id", milestoneID),
		zap.Uint("assignment_id", assignmentID))
	return &submission, nil
}

type MilestoneStatusRow struct {
	MilestoneID   uint    `json:"milestone_id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	SubmissionURL *string `json:"submission_url"`
	Status        *string `json:"status"`
}

// MilestoneStatus lists every milestone of the assignment's project,
// left-joined with the assignment's submissions; milestones with no
// submission yet carry null url and status.
func (s *Submissions) MilestoneStatus(student *models.User, assignmentID uint) ([]MilestoneStatusRow, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment not found")
		}
		return nil, apperr.Internal(err)
	}
	if assignment.StudentID != student.ID {
		return nil, apperr.Forbidden("Assignment belongs to another student")
	}

	var rows []MilestoneStatusRow
	err := s.db.Table("milestones").
		Select(`milestones.id AS milestone_id,
			milestones.title,
			milestones.price,
			submissions.submission_url,
			submissions.status`).
		Joins("LEFT JOIN submissions ON submissions.milestone_id = milestones.id AND submissions.assignment_id = ?", assignmentID).
		Where("milestones.project_id = ?", assignment.ProjectID).
		Order("milestones.id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

// Review settles pending submissions under a milestone owned by the calling
// organization. Only rows still in submitted state are touched; accepted and
// declined are terminal for this operation.
func (s *Submissions) Review(org *models.User, milestoneID uint, accepted bool) error {
	var milestone models.Milestone
	if err := s.db.First(&milestone, milestoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Milestone not found")
		}
		return apperr.Internal(err)
	}

	var project models.Project
	if err := s.db.First(&project, milestone.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Project not found")
		}
		return apperr.Internal(err)
	}
	if project.OrgID != org.ID {
		return apperr.Forbidden("Project belongs to another organization")
	}

	status := models.SubmissionStatusDeclined
	if accepted {
		status = models.SubmissionStatusAccepted
	}

	result := s.db.Model(&models.Submission{}).
		Where("milestone_id = ? AND status = ?", milestoneID, models.SubmissionStatusSubmitted).
		Update("status", status)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("No pending submission for this milestone")
	}

	s.log.Info("submission reviewed",
		zap.Uint("milestone_id", milestoneID),
		zap.String("status", status))
	return nil
}
