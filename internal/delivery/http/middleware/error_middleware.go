package middleware

import (
	"errors"
	"net/http"

	"recruitment-intake-backend/internal/delivery/http/response"
	"recruitment-intake-backend/internal/domain"
	"recruitment-intake-backend/pkg/apperror"
	"recruitment-intake-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the gin context into the standard
// JSON error envelope. Internal errors are logged server-side and never
// reach the client verbatim.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				reqID, _ := c.Get(string(domain.KeyRequestID))
				logger.Log.Error("request failed",
					"error", appErr.Err,
					"path", c.FullPath(),
					"request_id", reqID,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		reqID, _ := c.Get(string(domain.KeyRequestID))
		logger.Log.Error("unhandled error",
			"error", err,
			"path", c.FullPath(),
			"request_id", reqID,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
