package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

// Projects owns organization projects and their milestones.
type Projects struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProjects(db *gorm.DB, log *zap.Logger) *Projects {
	return &Projects{db: db, log: log}
}

type MilestoneInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DueDate     string  `json:"due_date"`
}

// Create inserts the project and its milestones as one transaction, with
// total_value fixed to the sum of the supplied prices. A project without
// milestones is never observable.
func (s *Projects) Create(org *models.User, name, deadline string, milestones []MilestoneInput) (*models.Project, error) {
	if org.Role != models.RoleOrganization {
		return nil, apperr.Forbidden("Organization account required")
	}
	if name == "" || len(milestones) == 0 {
		return nil, apperr.Invalid("Project name and at least one milestone are required")
	}

	var total float64
	for _, m := range milestones {
		if m.Title == "" {
			return nil, apperr.Invalid("Milestone title is required")
		}
		if m.Price < 0 {
			return nil, apperr.Invalid("Milestone price must not be negative")
		}
		total += m.Price
	}

	project := models.Project{
		OrgID:      org.ID,
		Name:       name,
		Deadline:   deadline,
		TotalValue: total,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		rows := make([]models.Milestone, 0, len(milestones))
		for _, m := range milestones {
			rows = append(rows, models.Milestone{
				ProjectID:   project.ID,
				Title:       m.Title,
				Description: m.Description,
				Price:       m.Price,
				DueDate:     m.DueDate,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		project.Milestones = rows
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("project created",
		zap.Uint("project_id", project.ID),
		zap.Uint("org_id", org.ID),
		zap.Int("milestones", len(milestones)))
	return &project, nil
}

// List returns the organization's own projects, newest first.
func (s *Projects) List(org *models.User) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("org_id = ?", org.ID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return projects, nil
}

// ListWithMilestones is List with each project's milestones preloaded, used
// by the organization profile view.
func (s *Projects) ListWithMilestones(org *models.User) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Preload("Milestones").
		Where("org_id = ?", org.ID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return projects, nil
}

type ApplicantRow struct {
	StudentID uint      `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AppliedAt time.Time `json:"applied_at"`
}

// Get returns a project with milestones and applicants. A project owned by a
// different organization is reported as not found, never as forbidden.
func (s *Projects) Get(org *models.User, projectID uint) (*models.Project, []ApplicantRow, error) {
	var project models.Project
	err := s.db.
		Preload("Milestones").
		Where("id = ? AND org_id = ?", projectID, org.ID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Project not found")
		}
		return nil, nil, apperr.Internal(err)
	}

	var applicants []ApplicantRow
	err = s.db.Table("applications").
		Select("applications.student_id, users.name, users.email, applications.created_at AS applied_at").
		Joins("JOIN users ON users.id = applications.student_id").
		Where("applications.project_id = ?", projectID).
		Scan(&applicants).Error
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}

	return &project, applicants, nil
}

// Delete cascades through submissions, assignments, applications,
// attachments and milestones before the project row, all in one transaction.
func (s *Projects) Delete(org *models.User, projectID uint) error {
	var project models.Project
	err := s.db.Where("id = ? AND org_id = ?", projectID, org.ID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Project not found")
		}
		return apperr.Internal(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		milestoneIDs := tx.Model(&models.Milestone{}).
			Select("id").
			Where("project_id = ?", projectID)

		if err := tx.Where("milestone_id IN (?)", milestoneIDs).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}

	s.log.Info("project deleted", zap.Uint("project_id", projectID), zap.Uint("org_id", org.ID))
	return nil
}

// ListOpen is the unscoped student browse view: every project with its
// posting organization's display name and milestones, newest first.
func (s *Projects) ListOpen() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Preload("Org").
		Preload("Milestones").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return projects, nil
}

// Milestones lists a project's milestones for the pre-apply view. Unscoped,
// like the browse view it backs.
func (s *Projects) Milestones(projectID uint) ([]models.Milestone, error) {
	if projectID == 0 {
		return nil, apperr.Invalid("Invalid project id")
	}
	var milestones []models.Milestone
	err := s.db.
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return milestones, nil
}
