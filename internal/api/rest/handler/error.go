package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vportnov/user-service/internal/model"
)

// errorResponse is the wire shape of every error reply.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps a domain error to an HTTP response. Unknown errors
// become a generic 500 so storage internals never leak outward.
func writeError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var conflictErr *model.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: validationErr.Fields,
		})
	case errors.As(err, &conflictErr):
		c.AbortWithStatusJSON(http.StatusConflict, errorResponse{
			Error: conflictErr.Error(),
		})
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{
			Error: "user not found",
		})
	case errors.Is(err, model.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
			Error: "authentication required",
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: "internal server error",
		})
	}
}
