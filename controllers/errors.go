package controllers

import (
	"errors"

	"github.com/basiljilani/Foodo-admin/forms"
	"github.com/basiljilani/Foodo-admin/logger"
	"github.com/basiljilani/Foodo-admin/pkg/resp"
	"github.com/basiljilani/Foodo-admin/repository"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail translates core errors into responses. Validation and referential
// problems carry their reason to the client; store faults are logged with
// their cause and surfaced as a generic failure.
func fail(c *gin.Context, err error) {
	var vErr *forms.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp.BadRequest(c, vErr.Reason)
	case errors.Is(err, uploads.ErrFileTooLarge),
		errors.Is(err, uploads.ErrInvalidFileType),
		errors.Is(err, repository.ErrMissingCategory),
		errors.Is(err, repository.ErrCategoryMismatch):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrCodeTaken),
		errors.Is(err, forms.ErrSubmitInFlight):
		resp.Conflict(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "record not found")
	default:
		logger.Error("catalog operation failed", zap.Error(err))
		resp.ServerError(c)
	}
}
