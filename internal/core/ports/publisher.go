package ports

import (
	"context"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// Publisher pushes a notification to connected subscribers. Implementations
// are fire-and-forget: Publish must never block the caller on delivery and
// must swallow transport failures — the durable write the notification
// describes is the source of truth.
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification)
}
