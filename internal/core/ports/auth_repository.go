package ports

import (
	"context"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// AuthRepository defines the interface for admin persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
