package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminacl/pkg/apperr"
	"adminacl/pkg/response"
)

// writeError translates a service outcome into the response envelope.
// Field-keyed outcomes carry their per-field messages through so forms
// can render them inline.
func writeError(c *gin.Context, err error) {
	appErr, ok := apperr.From(err)
	if !ok {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "internal server error"))
		return
	}

	status := statusOf(appErr.Code)
	if len(appErr.Fields) > 0 {
		c.JSON(status, response.FieldErrors(status, appErr.Message, appErr.Fields))
		return
	}
	c.JSON(status, response.Error(status, appErr.Message))
}

func statusOf(code apperr.Code) int {
	switch code {
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
