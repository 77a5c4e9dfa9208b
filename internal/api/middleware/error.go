package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-yield/internal/api/models"
	"solar-yield/internal/model"
)

// ErrorHandler converts errors attached with c.Error into the shared
// {error:{code,message}} envelope and recovers panics as 500s. Handlers
// attach engine errors and leave the status mapping here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				message := "An unexpected error occurred"
				if s, ok := recovered.(string); ok {
					message = s
				}
				abortWith(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, code := classify(err)
		abortWith(c, status, code, err.Error())
	}
}

// classify maps the simulation error taxonomy to HTTP statuses: a bad
// site is a malformed request, an unusable configuration is a semantic
// one, anything else is internal.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidLocation):
		return http.StatusBadRequest, "INVALID_LOCATION"
	case errors.Is(err, model.ErrIncompleteConfiguration):
		return http.StatusUnprocessableEntity, "INCOMPLETE_CONFIGURATION"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func abortWith(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: models.ErrorDetail{
		Code:    code,
		Message: message,
	}})
}
