package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/pkg/response"
)

// statusFor maps application error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrValidation),
		errors.Is(err, application.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok && v != "" {
		return &v
	}
	return nil
}

// bindBodyOrQuery binds a JSON body when one is sent and falls back to
// query parameters otherwise. Chunked bodies report ContentLength -1.
func bindBodyOrQuery(c *gin.Context, obj any) error {
	if c.ContentType() == gin.MIMEJSON && c.Request.Body != nil && c.Request.Body != http.NoBody {
		return c.ShouldBindJSON(obj)
	}
	return c.ShouldBindQuery(obj)
}
