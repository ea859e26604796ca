package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/simplify-dev/simplify/internal/handlers"
	"github.com/simplify-dev/simplify/internal/middleware"
	"github.com/simplify-dev/simplify/internal/models"
	"github.com/simplify-dev/simplify/internal/services"
)

type Deps struct {
	Identity *services.Identity
	Auth     *handlers.AuthHandler
	Org      *handlers.OrganizationHandler
	Student  *handlers.StudentHandler
	Admin    *handlers.AdminHandler

	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", "X-Login-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	authn := middleware.Auth(deps.Identity)

	auth := r.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
		auth.GET("/me", authn, deps.Auth.Me)
		auth.POST("/rotate", authn, deps.Auth.Rotate)
	}

	org := r.Group("/organization", authn, middleware.RequireRole(models.RoleOrganization))
	{
		org.POST("/projects/create", deps.Org.CreateProject)
		org.GET("/projects", deps.Org.ListProjects)
		org.GET("/projects/:id", deps.Org.GetProject)
		org.DELETE("/projects/:id", deps.Org.DeleteProject)

		org.GET("/projects/:id/applicants", deps.Org.ListApplicants)
		org.POST("/projects/:id/assign", deps.Org.Assign)
		org.POST("/projects/:id/accept", deps.Org.Assign)

		org.GET("/active-work", deps.Org.ActiveWork)
		org.GET("/active-work/details", deps.Org.ActiveWorkDetails)

		org.POST("/milestones/:id/accept", deps.Org.AcceptMilestone)
		org.POST("/milestones/:id/decline", deps.Org.DeclineMilestone)

		org.GET("/profile", deps.Org.Profile)
		org.GET("/profile/projects", deps.Org.ProfileProjects)
	}
	// Reports carry the reporter's own contact details, no session required.
	r.POST("/organization/report", deps.Org.Report)

	student := r.Group("/student")
	{
		// Browse and catalog views are public, like the original.
		student.GET("/projects", deps.Student.BrowseProjects)
		student.GET("/project/:projectId/milestones", deps.Student.ProjectMilestones)
		student.GET("/webdev-courses", deps.Student.Courses("webdev"))
		student.GET("/cyber-courses", deps.Student.Courses("cyber"))
		student.GET("/data-analytics-courses", deps.Student.Courses("data-analytics"))
		student.GET("/data-science-courses", deps.Student.Courses("data-science"))
		student.GET("/aiml-courses", deps.Student.Courses("ai-ml"))
		student.GET("/softwaredev-courses", deps.Student.Courses("software-dev"))
		student.GET("/gig-guide", deps.Student.GigGuide)
		student.GET("/trial-projects", deps.Student.TrialProjects)
		student.POST("/report", deps.Student.Report)

		scoped := student.Group("", authn, middleware.RequireRole(models.RoleStudent))
		{
			scoped.GET("/profile", deps.Student.Profile)
			scoped.POST("/projects/apply", deps.Student.Apply)
			scoped.GET("/active-projects", deps.Student.ActiveProjects)
			scoped.GET("/projects/:assignmentId/milestones", deps.Student.AssignmentMilestones)
			scoped.POST("/milestones/:id/submit", deps.Student.SubmitMilestone)
		}
	}

	admin := r.Group("/admin", authn, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/courses", deps.Admin.ListCourses)
		admin.POST("/courses", deps.Admin.AddCourse)
		admin.DELETE("/courses/:id", deps.Admin.RemoveCourse)

		admin.GET("/gig-books", deps.Admin.ListGigBooks)
		admin.POST("/gig-books", deps.Admin.AddGigBook)
		admin.DELETE("/gig-books/:id", deps.Admin.RemoveGigBook)

		admin.GET("/users", deps.Admin.ListUsers)
	}

	return r
}
