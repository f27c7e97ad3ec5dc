package ports

import (
	"context"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// IdentityStore persists the single authenticated identity of a session.
// Load returns (nil, nil) when nothing is stored.
type IdentityStore interface {
	Load(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}

// ActionGuard allows one in-flight execution per action key.
// Acquire fails with domain.ErrActionPending while the key is held; the returned
// release func must be called once the action settles, whatever its outcome.
type ActionGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// ActivityRecorder stores an audit entry for a successful lifecycle write.
type ActivityRecorder interface {
	Record(ctx context.Context, activity domain.Activity) error
}

// TransportSearcher finds transport options for a route.
type TransportSearcher interface {
	Search(ctx context.Context, departure, destination string, date domain.Date) ([]domain.TransportOption, error)
}
