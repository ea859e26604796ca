package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

type submissionFixture struct {
	conn       *gorm.DB
	svc        *Submissions
	org        *models.User
	student    *models.User
	project    *models.Project
	assignment *models.Assignment
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	conn := openTestDB(t)
	logger := testLogger()
	projectsSvc := NewProjects(conn, logger)
	engagementSvc := NewEngagement(conn, logger)

	org := createOrg(t, conn, "acme")
	student := createStudent(t, conn, "sam")
	project := seedProject(t, projectsSvc, org)

	assignment, err := engagementSvc.Assign(org, project.ID, student.ID)
	require.NoError(t, err)

	return &submissionFixture{
		conn:       conn,
		svc:        NewSubmissions(conn, logger),
		org:        org,
		student:    student,
		project:    project,
		assignment: assignment,
	}
}

func TestSubmit(t *testing.T) {
	f := newSubmissionFixture(t)
	milestone := f.project.Milestones[0]

	submission, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, " https://work.example/design ")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusSubmitted, submission.Status)
	assert.Equal(t, "https://work.example/design", submission.SubmissionURL)

	// Resubmitting while still pending replaces the url in place.
	updated, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://work.example/design-v2")
	require.NoError(t, err)
	assert.Equal(t, submission.ID, updated.ID)
	assert.Equal(t, "https://work.example/design-v2", updated.SubmissionURL)

	var count int64
	require.NoError(t, f.conn.Model(&models.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitValidation(t *testing.T) {
	f := newSubmissionFixture(t)
	milestone := f.project.Milestones[0]

	_, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "  ")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	_, err = f.svc.Submit(f.student, 9999, milestone.ID, "https://x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.svc.Submit(f.student, f.assignment.ID, 9999, "https://x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitOwnership(t *testing.T) {
	f := newSubmissionFixture(t)
	other := createStudent(t, f.conn, "pat")

	_, err := f.svc.Submit(other, f.assignment.ID, f.project.Milestones[0].ID, "https://x")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestSubmitCrossProjectMilestone(t *testing.T) {
	f := newSubmissionFixture(t)

	// A milestone from an unrelated project must not be accepted under this
	// assignment.
	projectsSvc := NewProjects(f.conn, testLogger())
	otherOrg := createOrg(t, f.conn, "rival")
	other := seedProject(t, projectsSvc, otherOrg)

	_, err := f.svc.Submit(f.student, f.assignment.ID, other.Milestones[0].ID, "https://x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestMilestoneStatus(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.svc.Submit(f.student, f.assignment.ID, f.project.Milestones[0].ID, "https://work.example/design")
	require.NoError(t, err)

	rows, err := f.svc.MilestoneStatus(f.student, f.assignment.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Design", rows[0].Title)
	require.NotNil(t, rows[0].Status)
	assert.Equal(t, models.SubmissionStatusSubmitted, *rows[0].Status)

	assert.Equal(t, "Build", rows[1].Title)
	assert.Nil(t, rows[1].SubmissionURL)
	assert.Nil(t, rows[1].Status)

	other := createStudent(t, f.conn, "pat")
	_, err = f.svc.MilestoneStatus(other, f.assignment.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestReviewAccept(t *testing.T) {
	f := newSubmissionFixture(t)
	milestone := f.project.Milestones[0]

	_, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://x")
	require.NoError(t, err)

	require.NoError(t, f.svc.Review(f.org, milestone.ID, true))

	var submission models.Submission
	require.NoError(t, f.conn.Where("milestone_id = ?", milestone.ID).First(&submission).Error)
	assert.Equal(t, models.SubmissionStatusAccepted, submission.Status)

	// Accepted is terminal: resubmission is refused.
	_, err = f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://x2")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// And there is nothing pending left to review.
	err = f.svc.Review(f.org, milestone.ID, true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestReviewDeclineAllowsResubmission(t *testing.T) {
	f := newSubmissionFixture(t)
	milestone := f.project.Milestones[0]

	_, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://x")
	require.NoError(t, err)

	require.NoError(t, f.svc.Review(f.org, milestone.ID, false))

	var submission models.Submission
	require.NoError(t, f.conn.Where("milestone_id = ?", milestone.ID).First(&submission).Error)
	assert.Equal(t, models.SubmissionStatusDeclined, submission.Status)

	// Declined reopens the pair: the same row flips back to submitted.
	resubmitted, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://x2")
	require.NoError(t, err)
	assert.Equal(t, submission.ID, resubmitted.ID)
	assert.Equal(t, models.SubmissionStatusSubmitted, resubmitted.Status)
}

func TestReviewGuards(t *testing.T) {
	f := newSubmissionFixture(t)
	milestone := f.project.Milestones[0]

	_, err := f.svc.Submit(f.student, f.assignment.ID, milestone.ID, "https://x")
	require.NoError(t, err)

	err = f.svc.Review(f.org, 9999, true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	rival := createOrg(t, f.conn, "rival")
	err = f.svc.Review(rival, milestone.ID, true)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// The submission is untouched after the refused review.
	var submission models.Submission
	require.NoError(t, f.conn.Where("milestone_id = ?", milestone.ID).First(&submission).Error)
	assert.Equal(t, models.SubmissionStatusSubmitted, submission.Status)
}
