package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// NewAuthErrorHandler returns the error handler for the auth service. It
// renders the auth envelope ({"status":false,...}), maps known domain errors
// to deterministic status codes, and logs unexpected errors without leaking
// them to the client unless includeDetail is set (development only).
func NewAuthErrorHandler(log zerolog.Logger, includeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, includeDetail)
		_ = c.JSON(code, map[string]any{
			"status":  false,
			"message": msg,
			"data":    nil,
		})
	}
}

// NewAPIErrorHandler returns the error handler for the recommendation and
// catalog services, which use "success" as the envelope key.
func NewAPIErrorHandler(log zerolog.Logger, includeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, includeDetail)
		_ = c.JSON(code, map[string]any{
			"success": false,
			"message": msg,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, includeDetail bool) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAdminExists):
		return http.StatusConflict, "Admin with this email already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, "Course not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if includeDetail {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
