package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resumekit/resumekit/pkg/apperror"
	"github.com/resumekit/resumekit/pkg/logger"
)

// ErrorMiddleware turns errors attached via c.Error into one JSON error
// response with the right status. Handlers never write error bodies
// themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr, zap.String("path", c.FullPath()))
		} else {
			log.Warn("Request rejected", zap.String("path", c.FullPath()), zap.String("reason", appErr.Message))
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}
