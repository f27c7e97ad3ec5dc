package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
	"github.com/tripnest/travel-client/internal/core/validation"
)

// SessionState is the authentication state of a Session.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticating  SessionState = "authenticating"
	StateAuthenticated   SessionState = "authenticated"
)

// Session holds the current identity and mirrors it into an IdentityStore.
type Session struct {
	users ports.UserGateway
	store ports.IdentityStore
	log   zerolog.Logger

	// loginMu serializes login attempts.
	loginMu sync.Mutex

	mu       sync.RWMutex
	state    SessionState
	identity *domain.Identity
}

// NewSession restores a previously persisted identity. No network call is made;
// a store that cannot be read leaves the session unauthenticated.
func NewSession(ctx context.Context, users ports.UserGateway, store ports.IdentityStore, log zerolog.Logger) *Session {
	s := &Session{users: users, store: store, log: log, state: StateUnauthenticated}

	id, err := store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore session")
		return s
	}
	if id != nil && id.ID != "" {
		restored := *id
		restored.IsAdmin = restored.Username == domain.AdminUsername
		s.identity = &restored
		s.state = StateAuthenticated
	}
	return s
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns a copy of the current identity.
func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) IsAuthenticated() bool { return s.State() == StateAuthenticated }

func (s *Session) IsAdmin() bool {
	id, ok := s.Identity()
	return ok && id.IsAdmin
}

func (s *Session) set(state SessionState, id *domain.Identity) {
	s.mu.Lock()
	s.state = state
	s.identity = id
	s.mu.Unlock()
}

// Login verifies credentials against the backend and persists the identity.
// Any failure leaves the session unauthenticated and clears the store, so a
// previous login is not restored by the next NewSession.
func (s *Session) Login(ctx context.Context, c ports.Credentials) (*domain.Identity, error) {
	if err := validation.Struct(c); err != nil {
		return nil, err
	}

	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	s.set(StateAuthenticating, nil)

	users, err := s.users.FindUsers(ctx, ports.UserFilter{Username: c.Username, Password: c.Password})
	if err != nil {
		s.reset(ctx)
		return nil, fmt.Errorf("login: %w", err)
	}
	if len(users) == 0 {
		s.reset(ctx)
		s.log.Info().Str("username", c.Username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	id := domain.IdentityFromUser(users[0])
	if err := s.store.Save(ctx, id); err != nil {
		s.reset(ctx)
		return nil, fmt.Errorf("login: persist identity: %w", err)
	}

	s.set(StateAuthenticated, &id)
	s.log.Info().Str("user_id", id.ID.String()).Bool("admin", id.IsAdmin).Msg("logged in")

	out := id
	return &out, nil
}

// Logout clears the identity. It never fails; store errors are only logged.
func (s *Session) Logout(ctx context.Context) {
	s.reset(ctx)
}

// reset drops the identity from memory and from the store.
func (s *Session) reset(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.set(StateUnauthenticated, nil)
}

// Register creates an account. The session state is left untouched.
func (s *Session) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return register(ctx, s.users, in, s.log)
}

// UpdateProfile replaces the stored user with the edited email and phone and
// refreshes the persisted identity.
func (s *Session) UpdateProfile(ctx context.Context, in ports.ProfileInput) (*domain.Identity, error) {
	current, ok := s.Identity()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user.Email = in.Email
	user.Phone = in.Phone

	updated, err := s.users.UpdateUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	id := domain.IdentityFromUser(*updated)
	if err := s.store.Save(ctx, id); err != nil {
		return nil, fmt.Errorf("update profile: persist identity: %w", err)
	}
	s.set(StateAuthenticated, &id)

	out := id
	return &out, nil
}

func register(ctx context.Context, users ports.UserGateway, in ports.RegisterInput, log zerolog.Logger) (*domain.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	taken, err := users.FindUsers(ctx, ports.UserFilter{Username: in.Username})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if len(taken) > 0 {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = users.FindUsers(ctx, ports.UserFilter{Email: in.Email})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if len(taken) > 0 {
		return nil, domain.ErrEmailTaken
	}

	created, err := users.Register(ctx, domain.User{
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	created.Password = ""

	log.Info().Str("user_id", created.ID.String()).Str("username", created.Username).Msg("user registered")
	return created, nil
}
