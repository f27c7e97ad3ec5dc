package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

// StoreFactory returns the identity store backing session sid.
type StoreFactory func(sid string) ports.IdentityStore

type sessionManager struct {
	users  ports.UserGateway
	stores StoreFactory
	guard  ports.ActionGuard
	log    zerolog.Logger
}

// NewSessionManager returns a SessionService that rebuilds a Session from its
// store on every call. Logins on the same sid are serialized through guard;
// a concurrent attempt fails with domain.ErrActionPending. A nil guard
// serializes nothing.
func NewSessionManager(users ports.UserGateway, stores StoreFactory, guard ports.ActionGuard, log zerolog.Logger) ports.SessionService {
	if guard == nil {
		guard = unguarded{}
	}
	return &sessionManager{users: users, stores: stores, guard: guard, log: log}
}

func (m *sessionManager) session(ctx context.Context, sid string) *Session {
	return NewSession(ctx, m.users, m.stores(sid), m.log.With().Str("sid", sid).Logger())
}

func (m *sessionManager) Login(ctx context.Context, sid string, c ports.Credentials) (*domain.Identity, error) {
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	release, err := m.guard.Acquire(ctx, "login:"+sid)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer release()
	return m.session(ctx, sid).Login(ctx, c)
}

func (m *sessionManager) Current(ctx context.Context, sid string) (*domain.Identity, error) {
	id, ok := m.session(ctx, sid).Identity()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return &id, nil
}

func (m *sessionManager) Logout(ctx context.Context, sid string) {
	m.session(ctx, sid).Logout(ctx)
}

func (m *sessionManager) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return register(ctx, m.users, in, m.log)
}

func (m *sessionManager) UpdateProfile(ctx context.Context, sid string, in ports.ProfileInput) (*domain.Identity, error) {
	return m.session(ctx, sid).UpdateProfile(ctx, in)
}
