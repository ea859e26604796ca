package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

// Engagement runs the application/assignment state machine. Per (project,
// student) pair: none -> applied -> assigned, where assigning consumes the
// application row.
type Engagement struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewEngagement(db *gorm.DB, log *zap.Logger) *Engagement {
	return &Engagement{db: db, log: log}
}

// Apply records a student's pending request for a project. A second apply for
// the same pair is a conflict, backed by the composite unique index.
func (s *Engagement) Apply(student *models.User, projectID uint, message string) (*models.Application, error) {
	if student.Role != models.RoleStudent {
		return nil, apperr.Forbidden("Student account required")
	}
	if projectID == 0 {
		return nil, apperr.Invalid("Invalid project id")
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(err)
	}

	application := models.Application{
		ProjectID: projectID,
		StudentID: student.ID,
		Message:   message,
		Status:    models.ApplicationStatusApplied,
	}

	if err := s.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Already applied")
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("application created",
		zap.Uint("project_id", projectID),
		zap.Uint("student_id", student.ID))
	return &application, nil
}

// ListApplicants returns applicant details for one of the organization's own
// projects.
func (s *Engagement) ListApplicants(org *models.User, projectID uint) ([]ApplicantRow, error) {
	var project models.Project
	err := s.db.Where("id = ? AND org_id = ?", projectID, org.ID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(err)
	}

	var applicants []ApplicantRow
	err = s.db.Table("applications").
		Select("applications.student_id, users.name, users.email, applications.created_at AS applied_at").
		Joins("JOIN users ON users.id = applications.student_id").
		Where("applications.project_id = ?", projectID).
		Scan(&applicants).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return applicants, nil
}

// Assign turns a pending application into an active assignment: the
// application row (if any) is deleted and the assignment inserted in one
// transaction. A missing application is tolerated, a second assignment for
// the pair is a conflict.
func (s *Engagement) Assign(org *models.User, projectID, studentID uint) (*models.Assignment, error) {
	if projectID == 0 || studentID == 0 {
		return nil, apperr.Invalid("Project and student are required")
	}

	var project models.Project
	err := s.db.Where("id = ? AND org_id = ?", projectID, org.ID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(err)
	}

	var student models.User
	err = s.db.Where("id = ? AND role = ?", studentID, models.RoleStudent).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, apperr.Internal(err)
	}

	assignment := models.Assignment{
		ProjectID:       projectID,
		StudentID:       studentID,
		AssignedByOrgID: org.ID,
		Status:          models.AssignmentStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("project_id = ? AND student_id = ?", projectID, studentID).
			Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Create(&assignment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Student already assigned to this project")
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("student assigned",
		zap.Uint("project_id", projectID),
		zap.Uint("student_id", studentID),
		zap.Uint("org_id", org.ID))
	return &assignment, nil
}

type ActiveWorkRow struct {
	ProjectName  string    `json:"project_name"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// ListActiveWork returns every active assignment across the organization's
// projects.
func (s *Engagement) ListActiveWork(org *models.User) ([]ActiveWorkRow, error) {
	var rows []ActiveWorkRow
	err := s.db.Table("assignments").
		Select(`projects.name AS project_name,
			users.name AS student_name,
			users.email AS student_email,
			assignments.created_at AS assigned_at`).
		Joins("JOIN projects ON projects.id = assignments.project_id").
		Joins("JOIN users ON users.id = assignments.student_id").
		Where("assignments.assigned_by_org_id = ? AND assignments.status = ?", org.ID, models.AssignmentStatusActive).
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

type ActiveWorkDetailRow struct {
	AssignmentID   uint    `json:"assignment_id"`
	ProjectName    string  `json:"project_name"`
	StudentName    string  `json:"student_name"`
	StudentEmail   string  `json:"student_email"`
	MilestoneID    uint    `json:"milestone_id"`
	MilestoneTitle string  `json:"milestone_title"`
	Price          float64 `json:"price"`
	SubmissionURL  *string `json:"submission_url"`
	Status         *string `json:"status"`
}

// ActiveWorkDetails expands ListActiveWork per milestone, left-joined with
// submissions so unsubmitted milestones appear with null status.
func (s *Engagement) ActiveWorkDetails(org *models.User) ([]ActiveWorkDetailRow, error) {
	var rows []ActiveWorkDetailRow
	err := s.db.Table("assignments").
		Select(`assignments.id AS assignment_id,
			projects.name AS project_name,
			users.name AS student_name,
			users.email AS student_email,
			milestones.id AS milestone_id,
			milestones.title AS milestone_title,
			milestones.price,
			submissions.submission_url,
			submissions.status`).
		Joins("JOIN projects ON projects.id = assignments.project_id").
		Joins("JOIN users ON users.id = assignments.student_id").
		Joins("JOIN milestones ON milestones.project_id = projects.id").
		Joins("LEFT JOIN submissions ON submissions.milestone_id = milestones.id AND submissions.assignment_id = assignments.id").
		Where("assignments.assigned_by_org_id = ? AND assignments.status = ?", org.ID, models.AssignmentStatusActive).
		Order("projects.id, milestones.id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

type StudentProjectRow struct {
	AssignmentID uint   `json:"assignment_id"`
	ProjectName  string `json:"project_name"`
	OrgName      string `json:"org_name"`
}

// StudentActiveProjects lists the projects a student has been assigned to.
func (s *Engagement) StudentActiveProjects(student *models.User) ([]StudentProjectRow, error) {
	if student.Role != models.RoleStudent {
		return nil, apperr.Forbidden("Student account required")
	}

	var rows []StudentProjectRow
	err := s.db.Table("assignments").
		Select(`assignments.id AS assignment_id,
			projects.name AS project_name,
			users.name AS org_name`).
		Joins("JOIN projects ON projects.id = assignments.project_id").
		Joins("JOIN users ON users.id = projects.org_id").
		Where("assignments.student_id = ?", student.ID).
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
