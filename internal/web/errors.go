package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/service"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotArchived),
		errors.Is(err, estimation.ErrDivisionByZero),
		errors.Is(err, estimation.ErrOutOfRange),
		errors.Is(err, estimation.ErrPreconditionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		msg = "internal server error"
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
