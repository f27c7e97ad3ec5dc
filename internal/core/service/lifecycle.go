package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// lifecycle holds what every write path shares: the pending-action guard, the
// audit trail and the clock.
type lifecycle struct {
	guard    ports.ActionGuard
	activity ports.ActivityRecorder
	now      func() time.Time
	log      zerolog.Logger
}

func newLifecycle(guard ports.ActionGuard, activity ports.ActivityRecorder, log zerolog.Logger) lifecycle {
	if guard == nil {
		guard = unguarded{}
	}
	if activity == nil {
		activity = nopRecorder{}
	}
	return lifecycle{guard: guard, activity: activity, now: time.Now, log: log}
}

// guarded runs fn while holding key. A concurrent call with the same key fails
// with domain.ErrActionPending and never reaches fn.
func (l *lifecycle) guarded(ctx context.Context, key string, fn func() error) error {
	release, err := l.guard.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// record stores an audit entry. Failures are logged and otherwise ignored.
func (l *lifecycle) record(ctx context.Context, a domain.Activity) {
	a.At = l.now().UTC()
	if err := l.activity.Record(ctx, a); err != nil {
		l.log.Warn().Err(err).Str("kind", string(a.Kind)).Str("subject", a.SubjectID.String()).Msg("failed to record activity")
	}
}

func (l *lifecycle) today() domain.Date {
	return domain.NewDate(l.now())
}

type unguarded struct{}

func (unguarded) Acquire(context.Context, string) (func(), error) { return func() {}, nil }

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, domain.Activity) error { return nil }

// canModify reports whether actor may change a record owned by owner.
func canModify(actor domain.Identity, owner domain.ID) bool {
	return actor.IsAdmin || (actor.ID != "" && actor.ID == owner)
}

func requireAdmin(actor domain.Identity) error {
	if actor.Role() != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
