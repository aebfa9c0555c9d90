package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/auth"
	"courier/internal/domain"
	"courier/internal/middleware"
	"courier/internal/repository"
	"courier/internal/service"
	"courier/internal/session"
)

// respondError maps an error to an HTTP status. Unexpected errors are
// logged server-side and surfaced as an opaque failure.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.String(code, "Something went wrong")
		return
	}

	c.String(code, err.Error())
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidSenderID),
		errors.Is(err, service.ErrInvalidReceiverName),
		errors.Is(err, service.ErrInvalidReceiverPhone),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, service.ErrInvalidPaymentMode),
		errors.Is(err, service.ErrInvalidTrackingNo),
		errors.Is(err, service.ErrInvalidCourierID),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrInvalidStatus):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Auth errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// requireRole composes the capability check for a handler. On anything
// but Allowed it writes the response itself and reports false:
// unauthenticated requests are redirected to the login page, forbidden
// ones get a 403.
func requireRole(c *gin.Context, role domain.Role) (*session.Session, bool) {
	sess := middleware.SessionFromContext(c)

	switch auth.Check(sess, role) {
	case auth.Unauthenticated:
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	case auth.Forbidden:
		c.String(http.StatusForbidden, "Forbidden")
		c.Abort()
		return nil, false
	}

	return sess, true
}
