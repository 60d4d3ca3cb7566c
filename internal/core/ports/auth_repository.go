package ports

import (
	"context"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// AuthRepository is the slice of user persistence the auth flow needs.
// The Mongo UserRepository satisfies it.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
