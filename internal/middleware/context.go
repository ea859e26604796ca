package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/simplify-dev/simplify/internal/models"
)

// CurrentUser returns the user the Auth middleware resolved for this request.
func CurrentUser(ctx *gin.Context) (*models.User, error) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}
