package domain

import "errors"

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrCourseNotFound  = errors.New("course not found")
	ErrMissingUniqueID = errors.New("course is missing a unique id")

	// ErrSearchUnavailable signals that the search backend could not be
	// reached. Callers degrade to fallback results rather than failing.
	ErrSearchUnavailable = errors.New("search backend unavailable")

	// ErrRecommenderUnavailable signals that the generative backend could not
	// be reached or returned an unusable payload.
	ErrRecommenderUnavailable = errors.New("recommendation backend unavailable")
)
