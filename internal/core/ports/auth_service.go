package ports

import (
	"context"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// AuthResult is returned by Register and Login: the admin's public fields
// plus a freshly signed bearer token.
type AuthResult struct {
	Admin *domain.Admin
	Token string
}

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
