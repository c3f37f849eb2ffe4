package httpapi

import (
	"net/http"
	"strconv"

	"yatube/internal/config"
	"yatube/internal/core/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps the core's error taxonomy onto HTTP. Validation
// failures re-render the submitted form with field messages.
func respondError(c *gin.Context, err error, form gin.H) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.NewInternalError(err)
	}
	switch appErr.Code {
	case apperr.CodeValidation:
		c.JSON(http.StatusOK, gin.H{"form": form, "errors": appErr.Fields})
	case apperr.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
	case apperr.CodeAuthenticationRequired, apperr.CodeAuthorizationDenied:
		c.Redirect(http.StatusFound, appErr.Redirect)
	default:
		_ = c.Error(err)
		config.Logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

// postID reads the :id path segment; anything but a positive integer is a 404.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}
