package ports

import (
	"context"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// ListFilters are the exact-match facets supported by the listing endpoint.
type ListFilters struct {
	University string
	Discipline string
}

// CourseRepository defines course persistence in the primary datastore.
// Courses are insert-only: re-uploads create new records.
type CourseRepository interface {
	Insert(ctx context.Context, course *domain.Course) error
	Find(ctx context.Context, filters ListFilters, skip, limit int) ([]domain.Course, error)
	Count(ctx context.Context, filters ListFilters) (int64, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
}
