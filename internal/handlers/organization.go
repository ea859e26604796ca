package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/internal/middleware"
	"github.com/simplify-dev/simplify/internal/models"
	"github.com/simplify-dev/simplify/internal/services"
)

type OrganizationHandler struct {
	projects    *services.Projects
	engagement  *services.Engagement
	submissions *services.Submissions
	notifier    *services.Notifier
	log         *zap.Logger
}

func NewOrganizationHandler(
	projects *services.Projects,
	engagement *services.Engagement,
	submissions *services.Submissions,
	notifier *services.Notifier,
	log *zap.Logger,
) *OrganizationHandler {
	return &OrganizationHandler{
		projects:    projects,
		engagement:  engagement,
		submissions: submissions,
		notifier:    notifier,
		log:         log,
	}
}

type projectSummary struct {
	ID          uint    `json:"id"`
	ProjectName string  `json:"project_name"`
	Deadline    string  `json:"deadline"`
	TotalValue  float64 `json:"total_value"`
}

type milestoneView struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DueDate     string  `json:"due_date"`
}

func summarize(p models.Project) projectSummary {
	return projectSummary{
		ID:          p.ID,
		ProjectName: p.Name,
		Deadline:    p.Deadline,
		TotalValue:  p.TotalValue,
	}
}

func milestoneViews(milestones []models.Milestone) []milestoneView {
	views := make([]milestoneView, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, milestoneView{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Price:       m.Price,
			DueDate:     m.DueDate,
		})
	}
	return views
}

type createProjectRequest struct {
	ProjectName string                    `json:"project_name"`
	Deadline    string                    `json:"deadline"`
	Milestones  []services.MilestoneInput `json:"milestones"`
}

func (h *OrganizationHandler) CreateProject(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	var req createProjectRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	project, err := h.projects.Create(user, req.ProjectName, req.Deadline, req.Milestones)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	created(ctx, gin.H{
		"project_id":  project.ID,
		"total_value": project.TotalValue,
	})
}

func (h *OrganizationHandler) ListProjects(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projects, err := h.projects.List(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, summarize(p))
	}
	ok(ctx, gin.H{"projects": summaries})
}

func (h *OrganizationHandler) GetProject(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projectID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid project id")
		return
	}

	project, applicants, err := h.projects.Get(user, projectID)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{
		"project": gin.H{
			"id":           project.ID,
			"project_name": project.Name,
			"deadline":     project.Deadline,
			"total_value":  project.TotalValue,
			"milestones":   milestoneViews(project.Milestones),
		},
		"applicants": applicants,
	})
}

func (h *OrganizationHandler) DeleteProject(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projectID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid project id")
		return
	}

	if err := h.projects.Delete(user, projectID); err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{})
}

func (h *OrganizationHandler) ListApplicants(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projectID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid project id")
		return
	}

	applicants, err := h.engagement.ListApplicants(user, projectID)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"applicants": applicants})
}

type assignRequest struct {
	StudentID uint `json:"student_id"`
}

// Assign consumes the student's application and creates the active
// assignment. The accept route is an alias for the same transition.
func (h *OrganizationHandler) Assign(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projectID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid project id")
		return
	}

	var req assignRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	assignment, err := h.engagement.Assign(user, projectID, req.StudentID)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"assignment_id": assignment.ID})
}

func (h *OrganizationHandler) ActiveWork(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	rows, err := h.engagement.ListActiveWork(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"active": rows})
}

func (h *OrganizationHandler) ActiveWorkDetails(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	rows, err := h.engagement.ActiveWorkDetails(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"work": rows})
}

func (h *OrganizationHandler) AcceptMilestone(ctx *gin.Context) {
	h.review(ctx, true)
}

func (h *OrganizationHandler) DeclineMilestone(ctx *gin.Context) {
	h.review(ctx, false)
}

func (h *OrganizationHandler) review(ctx *gin.Context, accepted bool) {
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

	if err := h.submissions.Review(user, milestoneID, accepted); err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{})
}

func (h *OrganizationHandler) Profile(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{
		"org": gin.H{
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

func (h *OrganizationHandler) ProfileProjects(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	projects, err := h.projects.ListWithMilestones(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		views = append(views, gin.H{
			"id":           p.ID,
			"project_name": p.Name,
			"deadline":     p.Deadline,
			"total_value":  p.TotalValue,
			"milestones":   milestoneViews(p.Milestones),
		})
	}
	ok(ctx, gin.H{"projects": views})
}

type reportRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Report queues an issue report for the admin mailbox. The "ORG - " prefix
// tells the admin which side of the marketplace it came from.
func (h *OrganizationHandler) Report(ctx *gin.Context) {
	var req reportRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}
	if req.Category == "" {
		failInvalid(ctx, "All fields are required")
		return
	}

	err := h.notifier.EnqueueReport(services.Report{
		Name:        req.Name,
		Email:       req.Email,
		Category:    "ORG - " + req.Category,
		Description: req.Description,
	})
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"message": "Report sent successfully."})
}
