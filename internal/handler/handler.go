// Package handler maps HTTP requests onto the service layer: request
// validation first, then the authenticated user's scope, then response
// shaping into the uniform envelope.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/service"
)

// respondServiceError translates a service error into its envelope and
// status code. Anything unrecognized is logged and surfaced as an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var inUse *service.InUseError
	var conflict *service.ConflictError

	switch {
	case errors.As(err, &notFound):
		middleware.RespondWithError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &inUse):
		middleware.RespondWithError(c, http.StatusBadRequest, inUse.Error())
	case errors.As(err, &conflict):
		middleware.RespondWithError(c, http.StatusConflict, conflict.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseIDParam reads the :id path parameter. Non-numeric IDs cannot match
// any record, so they report not found rather than bad request.
func parseIDParam(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		middleware.RespondWithError(c, http.StatusNotFound, resource+" not found")
		return 0, false
	}
	return uint(id), true
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts an ISO-8601 datetime or a plain YYYY-MM-DD day.
func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func dateValidationError(field string) []middleware.ValidationError {
	return []middleware.ValidationError{{
		Field:   field,
		Message: "Date must be an ISO-8601 datetime or YYYY-MM-DD",
		Type:    "datetime",
	}}
}
