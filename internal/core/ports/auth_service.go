package ports

import (
	"context"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// AuthService implements registration and login for the protect middleware's
// token scheme.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
