package ports

import (
	"context"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// SearchFilters are the exact-match facets applied on top of the free-text
// query.
type SearchFilters struct {
	University  string `json:"university,omitempty"`
	Discipline  string `json:"discipline,omitempty"`
	CourseLevel string `json:"courseLevel,omitempty"`
}

// SearchHit is a course returned by the search backend together with its
// relevance score. The embedded course flattens into the hit on the wire.
type SearchHit struct {
	domain.Course
	Score float64 `json:"_score"`
}

// SearchIndex defines the full-text search backend for courses.
type SearchIndex interface {
	IndexCourse(ctx context.Context, course domain.Course) error
	// Search ranks the query against course text fields, applies the facet
	// filters exactly, and returns the requested result window plus the total
	// number of matching documents.
	Search(ctx context.Context, query string, filters SearchFilters, from, size int) ([]SearchHit, int64, error)
}
