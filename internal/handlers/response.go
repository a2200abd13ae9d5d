package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError maps the service-layer sentinel wrapped in err to an HTTP
// status and writes the error envelope.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = "invalid_argument"
	case errors.Is(err, pkgerrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
	case errors.Is(err, pkgerrors.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, pkgerrors.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
	case errors.Is(err, pkgerrors.ErrUpstream):
		status = http.StatusBadGateway
		code = "upstream_failed"
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
