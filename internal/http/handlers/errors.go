package handlers

import (
	"errors"
	"net/http"

	"drivent/internal/domain"
	"drivent/internal/http/middleware"
	"drivent/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request. Clients should rely on
// the status code only.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// errorMapping selects which kinds keep their own status. Everything else
// collapses into 403.
type errorMapping struct {
	validation bool
}

var (
	readMapping  = errorMapping{}
	writeMapping = errorMapping{validation: true}
)

// respond maps a domain error to its status and logs anything unclassified.
func (m errorMapping) respond(c *gin.Context, module string, err error) {
	var (
		ve domain.ValidationError
		fe domain.ForbiddenError
	)
	switch {
	case m.validation && errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"field": ve.Field})
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.As(err, &fe):
		respondError(c, http.StatusForbidden, fe.Rule, err.Error(), nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), module, "unexpected_error", err.Error())
		respondError(c, http.StatusForbidden, "forbidden", "request denied", nil)
	}
}
