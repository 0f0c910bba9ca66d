package middleware

import (
	"errors"
	"net/http"

	"user-directory/internal/delivery/http/response"
	"user-directory/internal/domain"
	"user-directory/pkg/apperror"
	"user-directory/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Err != nil {
				logger.Log.Warn("Request failed", "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)

		case errors.Is(err, domain.ErrBackendUnreachable),
			errors.Is(err, domain.ErrBackendStatus),
			errors.Is(err, domain.ErrBackendResponse):
			logger.Log.Warn("Users backend failure", "error", err)
			response.Error(c, http.StatusBadGateway, "The users service is unavailable. Please try again later.", nil)

		default:
			// Never expose internal error details to clients; log them server-side.
			logger.Log.Error("Internal Server Error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
