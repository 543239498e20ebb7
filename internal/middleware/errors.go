package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// ErrorHandler is the single boundary translator: it maps the last error a
// handler attached to the context into the JSON error envelope, and recovers
// panics into a generic 500. Internal detail never reaches the client.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(debug.Stack())).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
					StatusCode: http.StatusInternalServerError,
					Message:    "Internal server error",
					Timestamp:  time.Now().UTC().Format(time.RFC3339),
					Path:       c.Request.URL.Path,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Status >= 500 {
				log.Error().Err(err).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("Request failed")
			}
			c.JSON(appErr.Status, errorResponse{
				StatusCode: appErr.Status,
				Message:    appErr.Message,
				Timestamp:  time.Now().UTC().Format(time.RFC3339),
				Path:       c.Request.URL.Path,
			})
			return
		}

		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled request error")

		c.JSON(http.StatusInternalServerError, errorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request.URL.Path,
		})
	}
}
