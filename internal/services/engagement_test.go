package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

func TestApply(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	student := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	application, err := svc.Apply(student, project.ID, "I can do this")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, application.Status)

	// Applying twice for the same project is a conflict.
	_, err = svc.Apply(student, project.ID, "again")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.Apply(student, 9999, "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Apply(org, project.ID, "")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListApplicants(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	rival := createOrg(t, conn, "rival")
	sam := createStudent(t, conn, "sam")
	pat := createStudent(t, conn, "pat")
	project := seedProject(t, projectsSvc, org)

	_, err := svc.Apply(sam, project.ID, "")
	require.NoError(t, err)
	_, err = svc.Apply(pat, project.ID, "")
	require.NoError(t, err)

	applicants, err := svc.ListApplicants(org, project.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 2)
	assert.Equal(t, sam.ID, applicants[0].StudentID)
	assert.Equal(t, "sam@student.test", applicants[0].Email)

	_, err = svc.ListApplicants(rival, project.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAssignConsumesApplication(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	student := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	_, err := svc.Apply(student, project.ID, "")
	require.NoError(t, err)

	assignment, err := svc.Assign(org, project.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusActive, assignment.Status)
	assert.Equal(t, org.ID, assignment.AssignedByOrgID)

	// The application row is gone once the assignment exists.
	err = conn.Where("project_id = ? AND student_id = ?", project.ID, student.ID).
		First(&models.Application{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Assigning the same student twice is a conflict.
	_, err = svc.Assign(org, project.ID, student.ID)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestAssignWithoutApplication(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	student := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	// Direct assignment is allowed even if the student never applied.
	assignment, err := svc.Assign(org, project.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, assignment.StudentID)
}

func TestAssignGuards(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	rival := createOrg(t, conn, "rival")
	student := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	_, err := svc.Assign(rival, project.ID, student.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Assign(org, project.ID, 9999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// An organization account cannot be assigned as a student.
	_, err = svc.Assign(org, project.ID, rival.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Assign(org, 0, student.ID)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestListActiveWork(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	rival := createOrg(t, conn, "rival")
	sam := createStudent(t, conn, "sam")
	pat := createStudent(t, conn, "pat")

	mine := seedProject(t, projectsSvc, org)
	theirs := seedProject(t, projectsSvc, rival)

	_, err := svc.Assign(org, mine.ID, sam.ID)
	require.NoError(t, err)
	_, err = svc.Assign(rival, theirs.ID, pat.ID)
	require.NoError(t, err)

	rows, err := svc.ListActiveWork(org)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Landing Page", rows[0].ProjectName)
	assert.Equal(t, "sam", rows[0].StudentName)
	assert.Equal(t, "sam@student.test", rows[0].StudentEmail)
}

func TestActiveWorkDetails(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)
	submissionsSvc := NewSubmissions(conn, logger)

	org := createOrg(t, conn, "acme")
	sam := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	assignment, err := svc.Assign(org, project.ID, sam.ID)
	require.NoError(t, err)

	_, err = submissionsSvc.Submit(sam, assignment.ID, project.Milestones[0].ID, "https://work.example/design")
	require.NoError(t, err)

	rows, err := svc.ActiveWorkDetails(org)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Milestone with a submission carries its url and status.
	assert.Equal(t, "Design", rows[0].MilestoneTitle)
	require.NotNil(t, rows[0].SubmissionURL)
	assert.Equal(t, "https://work.example/design", *rows[0].SubmissionURL)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, models.SubmissionStatusSubmitted, *rows[0].Status)

	// The untouched milestone shows up with null submission fields.
	assert.Equal(t, "Build", rows[1].MilestoneTitle)
	assert.Nil(t, rows[1].SubmissionURL)
	assert.Nil(t, rows[1].Status)
}

func TestStudentActiveProjects(t *testing.T) {
	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	svc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	sam := createStudent(t, conn, "sam")
	pat := createStudent(t, conn, "pat")
	project := seedProject(t, projectsSvc, org)

	assignment, err := svc.Assign(org, project.ID, sam.ID)
	require.NoError(t, err)

	rows, err := svc.StudentActiveProjects(sam)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, assignment.ID, rows[0].AssignmentID)
	assert.Equal(t, "Landing Page", rows[0].ProjectName)
	assert.Equal(t, "acme", rows[0].OrgName)

	rows, err = svc.StudentActiveProjects(pat)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.StudentActiveProjects(org)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
