package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/internal/middleware"
	"github.com/simplify-dev/simplify/internal/services"
)

type StudentHandler struct {
	projects    *services.Projects
	engagement  *services.Engagement
	submissions *services.Submissions
	catalog     *services.Catalog
	notifier    *services.Notifier
	log         *zap.Logger
}

func NewStudentHandler(
	projects *services.Projects,
	engagement *services.Engagement,
	submissions *services.Submissions,
	catalog *services.Catalog,
	notifier *services.Notifier,
	log *zap.Logger,
) *StudentHandler {
	return &StudentHandler{
		projects:    projects,
		engagement:  engagement,
		submissions: submissions,
		catalog:     catalog,
		notifier:    notifier,
		log:         log,
	}
}

func (h *StudentHandler) Profile(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{
		"name":         user.Name,
		"email":        user.Email,
		"college_name": user.CollegeName,
		"skills":       user.Skills,
	})
}

// BrowseProjects is the unscoped listing students pick projects from.
func (h *StudentHandler) BrowseProjects(ctx *gin.Context) {
	projects, err := h.projects.ListOpen()
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		milestones := make([]gin.H, 0, len(p.Milestones))
		for _, m := range p.Milestones {
			milestones = append(milestones, gin.H{
				"milestone_id": m.ID,
				"title":        m.Title,
				"price":        m.Price,
			})
		}
		views = append(views, gin.H{
			"project_id":   p.ID,
			"project_name": p.Name,
			"deadline":     p.Deadline,
			"total_value":  p.TotalValue,
			"org_name":     p.Org.Name,
			"milestones":   milestones,
		})
	}
	ok(ctx, gin.H{"projects": views})
}

type applyRequest struct {
	ProjectID uint   `json:"project_id"`
	Message   string `json:"message"`
}

func (h *StudentHandler) Apply(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	var req applyRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	application, err := h.engagement.Apply(user, req.ProjectID, req.Message)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	created(ctx, gin.H{"application_id": application.ID})
}

func (h *StudentHandler) ActiveProjects(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	rows, err := h.engagement.StudentActiveProjects(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"projects": rows})
}

// AssignmentMilestones shows the caller's milestone progress for one of
// their assignments, including submission state.
func (h *StudentHandler) AssignmentMilestones(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	assignmentID, valid := uintParam(ctx, "assignmentId")
	if !valid {
		failInvalid(ctx, "Invalid assignment id")
		return
	}

	rows, err := h.submissions.MilestoneStatus(user, assignmentID)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"milestones": rows})
}

type submitRequest struct {
	AssignmentID  uint   `json:"assignment_id"`
	SubmissionURL string `json:"submission_url"`
}

func (h *StudentHandler) SubmitMilestone(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	milestoneID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid milestone id")
		return
	}

	var req submitRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid data")
		return
	}

	submission, err := h.submissions.Submit(user, req.AssignmentID, milestoneID, req.SubmissionURL)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"submission_id": submission.ID, "status": submission.Status})
}

// ProjectMilestones is the pre-apply milestone preview on the browse view.
func (h *StudentHandler) ProjectMilestones(ctx *gin.Context) {
	projectID, valid := uintParam(ctx, "projectId")
	if !valid {
		failInvalid(ctx, "Invalid project id")
		return
	}

	milestones, err := h.projects.Milestones(projectID)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, gin.H{
			"milestone_id": m.ID,
			"title":        m.Title,
			"price":        m.Price,
		})
	}
	ok(ctx, gin.H{"milestones": views})
}

// Courses serves one catalog category per route, matching the original
// per-category endpoints.
func (h *StudentHandler) Courses(category string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		courses, err := h.catalog.CoursesByCategory(category)
		if err != nil {
			fail(ctx, h.log, err)
			return
		}

		views := make([]gin.H, 0, len(courses))
		for _, c := range courses {
			views = append(views, gin.H{
				"title":             c.Title,
				"short_description": c.ShortDescription,
				"organization":      c.Organization,
				"level":             c.Level,
				"duration":          c.Duration,
				"external_url":      c.ExternalURL,
			})
		}
		ok(ctx, gin.H{"courses": views})
	}
}

func (h *StudentHandler) GigGuide(ctx *gin.Context) {
	books, err := h.catalog.GigBooks()
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(books))
	for _, b := range books {
		views = append(views, gin.H{
			"title": b.Title,
			"topic": b.Topic,
			"link":  b.Link,
		})
	}
	ok(ctx, gin.H{"books": views})
}

func (h *StudentHandler) TrialProjects(ctx *gin.Context) {
	trials, err := h.catalog.TrialProjects()
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(trials))
	for _, t := range trials {
		views = append(views, gin.H{
			"title":             t.Title,
			"short_description": t.ShortDescription,
			"domain":            t.Domain,
			"skills_required":   t.SkillsRequired,
			"difficulty":        t.Difficulty,
			"estimated_hours":   t.EstimatedHours,
			"budget_range":      t.BudgetRange,
		})
	}
	ok(ctx, gin.H{"projects": views})
}

func (h *StudentHandler) Report(ctx *gin.Context) {
	var req reportRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	err := h.notifier.EnqueueReport(services.Report{
		Name:        req.Name,
		Email:       req.Email,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"message": "Report submitted successfully."})
}
