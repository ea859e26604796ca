package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

func TestCoursesByCategory(t *testing.T) {
	conn := openTestDB(t)
	svc := NewCatalog(conn, testLogger())

	require.NoError(t, conn.Create(&models.Course{Code: "WD1", Title: "HTML Basics", Category: "webdev", IsActive: true}).Error)
	require.NoError(t, conn.Create(&models.Course{Code: "WD2", Title: "Retired", Category: "webdev", IsActive: false}).Error)
	require.NoError(t, conn.Create(&models.Course{Code: "CY1", Title: "Network Security", Category: "cyber", IsActive: true}).Error)

	courses, err := svc.CoursesByCategory("webdev")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "HTML Basics", courses[0].Title)

	_, err = svc.CoursesByCategory("")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestAddCourse(t *testing.T) {
	conn := openTestDB(t)
	svc := NewCatalog(conn, testLogger())

	course, err := svc.AddCourse(CourseInput{
		Title:        "Go Fundamentals",
		Description:  "From zero to services",
		Organization: "Simplify",
		Duration:     "6 weeks",
		Level:        "Beginner",
		Category:     "software-dev",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(course.Code, "ADMIN_"))
	assert.True(t, course.IsActive)

	_, err = svc.AddCourse(CourseInput{Title: "No category"})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestDeactivateCourse(t *testing.T) {
	conn := openTestDB(t)
	svc := NewCatalog(conn, testLogger())

	course := models.Course{Code: "WD1", Title: "HTML Basics", Category: "webdev", IsActive: true}
	require.NoError(t, conn.Create(&course).Error)

	require.NoError(t, svc.DeactivateCourse(course.ID))

	// The row survives but is hidden from listings.
	var stored models.Course
	require.NoError(t, conn.First(&stored, course.ID).Error)
	assert.False(t, stored.IsActive)

	courses, err := svc.CoursesByCategory("webdev")
	require.NoError(t, err)
	assert.Empty(t, courses)

	err = svc.DeactivateCourse(9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGigBooks(t *testing.T) {
	conn := openTestDB(t)
	svc := NewCatalog(conn, testLogger())

	_, err := svc.AddGigBook(GigBookInput{Title: "Zebra Patterns", Link: "https://b.example"})
	require.NoError(t, err)
	book, err := svc.AddGigBook(GigBookInput{Title: "Angular Notes", Link: "https://a.example"})
	require.NoError(t, err)

	_, err = svc.AddGigBook(GigBookInput{Title: "No link"})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	books, err := svc.GigBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Angular Notes", books[0].Title)

	require.NoError(t, svc.DeleteGigBook(book.ID))
	err = svc.DeleteGigBook(book.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestListUsers(t *testing.T) {
	conn := openTestDB(t)
	svc := NewCatalog(conn, testLogger())

	createOrg(t, conn, "acme")
	createStudent(t, conn, "sam")

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Sensitive columns are not selected.
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
		assert.Empty(t, u.LoginID)
	}
}
