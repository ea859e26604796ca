package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/internal/services"
)

// AdminHandler maintains the learning catalog and the user directory. All
// routes sit behind the admin role guard.
type AdminHandler struct {
	catalog *services.Catalog
	log     *zap.Logger
}

func NewAdminHandler(catalog *services.Catalog, log *zap.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, log: log}
}

func (h *AdminHandler) ListCourses(ctx *gin.Context) {
	courses, err := h.catalog.CoursesByCategory(ctx.Query("category"))
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(courses))
	for _, c := range courses {
		views = append(views, gin.H{
			"id":       c.ID,
			"title":    c.Title,
			"desc":     c.ShortDescription,
			"org":      c.Organization,
			"duration": c.Duration,
			"level":    c.Level,
		})
	}
	ok(ctx, gin.H{"courses": views})
}

func (h *AdminHandler) AddCourse(ctx *gin.Context) {
	var req services.CourseInput
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	course, err := h.catalog.AddCourse(req)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	created(ctx, gin.H{"id": course.ID})
}

func (h *AdminHandler) RemoveCourse(ctx *gin.Context) {
	courseID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid course id")
		return
	}

	if err := h.catalog.DeactivateCourse(courseID); err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{})
}

func (h *AdminHandler) ListGigBooks(ctx *gin.Context) {
	books, err := h.catalog.GigBooks()
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(books))
	for _, b := range books {
		views = append(views, gin.H{
			"id":       b.ID,
			"title":    b.Title,
			"topic":    b.Topic,
			"provider": b.Provider,
			"link":     b.Link,
		})
	}
	ok(ctx, gin.H{"books": views})
}

func (h *AdminHandler) AddGigBook(ctx *gin.Context) {
	var req services.GigBookInput
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid input")
		return
	}

	book, err := h.catalog.AddGigBook(req)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	created(ctx, gin.H{"id": book.ID})
}

func (h *AdminHandler) RemoveGigBook(ctx *gin.Context) {
	bookID, valid := uintParam(ctx, "id")
	if !valid {
		failInvalid(ctx, "Invalid book id")
		return
	}

	if err := h.catalog.DeleteGigBook(bookID); err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{})
}

func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	users, err := h.catalog.ListUsers()
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for _, u := range users {
		views = append(views, gin.H{
			"id":            u.ID,
			"name":          u.Name,
			"email":         u.Email,
			"role":          u.Role,
			"college_name":  u.CollegeName,
			"created_at":    u.CreatedAt,
			"last_login_at": u.LastLoginAt,
		})
	}
	ok(ctx, gin.H{"users": views})
}
