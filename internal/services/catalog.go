package services

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

// Catalog serves the static learning content plus the admin surface that
// maintains it.
type Catalog struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalog(db *gorm.DB, log *zap.Logger) *Catalog {
	return &Catalog{db: db, log: log}
}

func (s *Catalog) CoursesByCategory(category string) ([]models.Course, error) {
	if category == "" {
		return nil, apperr.Invalid("Category required")
	}
	var courses []models.Course
	err := s.db.
		Where("category = ? AND is_active = ?", category, true).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return courses, nil
}

func (s *Catalog) GigBooks() ([]models.GigBook, error) {
	var books []models.GigBook
	if err := s.db.Order("title ASC").Find(&books).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return books, nil
}

func (s *Catalog) TrialProjects() ([]models.TrialProject, error) {
	var trials []models.TrialProject
	if err := s.db.Order("created_at DESC").Find(&trials).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return trials, nil
}

type CourseInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Organization string `json:"organization"`
	Duration     string `json:"duration"`
	Level        string `json:"level"`
	Category     string `json:"category"`
}

// AddCourse inserts an admin-authored course with a generated code.
func (s *Catalog) AddCourse(in CourseInput) (*models.Course, error) {
	if in.Title == "" || in.Description == "" || in.Organization == "" ||
		in.Duration == "" || in.Level == "" || in.Category == "" {
		return nil, apperr.Invalid("Missing fields")
	}

	course := models.Course{
		Code:             "ADMIN_" + strings.ToUpper(uuid.NewString()[:8]),
		Title:            in.Title,
		ShortDescription: in.Description,
		Category:         in.Category,
		Organization:     in.Organization,
		Level:            in.Level,
		Duration:         in.Duration,
		IsActive:         true,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("course added", zap.Uint("course_id", course.ID), zap.String("category", course.Category))
	return &course, nil
}

// DeactivateCourse hides a course from student listings without destroying
// the row.
func (s *Catalog) DeactivateCourse(courseID uint) error {
	if courseID == 0 {
		return apperr.Invalid("Invalid course id")
	}
	result := s.db.Model(&models.Course{}).
		Where("id = ?", courseID).
		Update("is_active", false)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Course not found")
	}
	return nil
}

type GigBookInput struct {
	Title    string `json:"title"`
	Topic    string `json:"topic"`
	Provider string `json:"provider"`
	Link     string `json:"link"`
}

func (s *Catalog) AddGigBook(in GigBookInput) (*models.GigBook, error) {
	if in.Title == "" || in.Link == "" {
		return nil, apperr.Invalid("Missing fields")
	}
	book := models.GigBook{Title: in.Title, Topic: in.Topic, Provider: in.Provider, Link: in.Link}
	if err := s.db.Create(&book).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &book, nil
}

func (s *Catalog) DeleteGigBook(bookID uint) error {
	if bookID == 0 {
		return apperr.Invalid("Invalid book id")
	}
	result := s.db.Delete(&models.GigBook{}, bookID)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Book not found")
	}
	return nil
}

// ListUsers is the admin user directory.
func (s *Catalog) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Select("id", "name", "email", "role", "college_name", "created_at", "last_login_at").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}
