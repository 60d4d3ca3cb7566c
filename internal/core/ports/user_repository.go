package ports

import (
	"context"
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// UserFilter carries all query parameters for the admin user listing.
type UserFilter struct {
	Role      string // empty = no filter
	Search    string // optional: case-insensitive substring match on name or email
	Page      int
	Limit     int
	SortField string
	SortOrder string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
