package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/internal/middleware"
	"github.com/simplify-dev/simplify/internal/services"
)

type AuthHandler struct {
	identity *services.Identity
	log      *zap.Logger
}

func NewAuthHandler(identity *services.Identity, log *zap.Logger) *AuthHandler {
	return &AuthHandler{identity: identity, log: log}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CollegeName string `json:"college_name"`
	Skills      string `json:"skills"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid request")
		return
	}

	user, token, err := h.identity.Register(services.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		CollegeName: req.CollegeName,
		Skills:      req.Skills,
	})
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	created(ctx, gin.H{
		"message":  "Account created successfully",
		"user_id":  user.ID,
		"login_id": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.BindJSON(&req); err != nil {
		failInvalid(ctx, "Invalid request")
		return
	}

	user, token, err := h.identity.Login(req.Email, req.Password)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{
		"message":  "Login successful",
		"login_id": token,
		"role":     user.Role,
		"name":     user.Name,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Rotate invalidates every outstanding token for the caller and hands back a
// fresh one.
func (h *AuthHandler) Rotate(ctx *gin.Context) {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	token, err := h.identity.Rotate(user)
	if err != nil {
		fail(ctx, h.log, err)
		return
	}

	ok(ctx, gin.H{"login_id": token})
}
