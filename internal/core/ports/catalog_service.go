package ports

import (
	"context"
	"io"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// UploadedCourse is the lightweight view of a persisted row returned by the
// upload endpoint.
type UploadedCourse struct {
	ID             string `json:"id"`
	CourseName     string `json:"courseName"`
	UniversityName string `json:"universityName"`
}

// UploadResult reports rows parsed versus rows persisted. The two differ when
// individual rows fail persistence; the upload as a whole still succeeds.
type UploadResult struct {
	TotalProcessed int              `json:"totalProcessed"`
	TotalSaved     int              `json:"totalSaved"`
	Courses        []UploadedCourse `json:"courses"`
}

// SearchInput carries the parameters of a search request. Its serialized form
// is the cache key, so every field participates in cache identity.
type SearchInput struct {
	Query   string
	Filters SearchFilters
	Page    int
	Limit   int
}

// SearchPagination echoes the requested window back to the caller.
type SearchPagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// SearchResult wraps ranked hits with the echoed query, filters and a
// pagination block.
type SearchResult struct {
	Query      string           `json:"query"`
	Filters    SearchFilters    `json:"filters"`
	Results    []SearchHit      `json:"results"`
	Pagination SearchPagination `json:"pagination"`
}

// ListInput carries the parameters of a listing request.
type ListInput struct {
	Page       int
	Limit      int
	University string
	Discipline string
}

type ListPagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ListResult struct {
	Courses    []domain.Course `json:"courses"`
	Pagination ListPagination  `json:"pagination"`
}

// CatalogService defines the course catalog use cases. The boolean returned
// by the read operations reports whether the response was served from cache.
type CatalogService interface {
	UploadCourses(ctx context.Context, csv io.Reader) (*UploadResult, error)
	SearchCourses(ctx context.Context, input SearchInput) (*SearchResult, bool, error)
	ListCourses(ctx context.Context, input ListInput) (*ListResult, bool, error)
	GetCourseByID(ctx context.Context, id string) (*domain.Course, bool, error)
}
