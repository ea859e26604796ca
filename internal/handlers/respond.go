package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/simplify-dev/simplify/internal/apperr"
)

// All responses share the {success: bool, ...} envelope the frontends
// already speak; status codes are normalized on top of it.

func ok(ctx *gin.Context, payload gin.H) {
	respond(ctx, http.StatusOK, payload)
}

func created(ctx *gin.Context, payload gin.H) {
	respond(ctx, http.StatusCreated, payload)
}

func respond(ctx *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	ctx.JSON(status, body)
}

func fail(ctx *gin.Context, log *zap.Logger, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err))
	}
	ctx.JSON(apperr.HTTPStatus(err), gin.H{
		"success": false,
		"error":   apperr.Message(err),
	})
}

func failInvalid(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
