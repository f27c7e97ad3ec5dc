package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub gateway
// ---------------------------------------------------------------------------

type stubGateway struct {
	mu sync.Mutex

	users    map[domain.ID]domain.User
	packages map[domain.ID]domain.Package
	bookings map[domain.ID]domain.Booking
	trips    map[domain.ID]domain.Trip
	expenses map[domain.ID]domain.Expense

	err   error          // if set, every call fails with it
	calls map[string]int // operation name -> call count
	seq   int
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		users:    make(map[domain.ID]domain.User),
		packages: make(map[domain.ID]domain.Package),
		bookings: make(map[domain.ID]domain.Booking),
		trips:    make(map[domain.ID]domain.Trip),
		expenses: make(map[domain.ID]domain.Expense),
		calls:    make(map[string]int),
	}
}

func (g *stubGateway) call(op string) error {
	g.calls[op]++
	return g.err
}

func (g *stubGateway) nextID() domain.ID {
	g.seq++
	return domain.ID(strconv.Itoa(g.seq))
}

func (g *stubGateway) total() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func (g *stubGateway) count(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[op]
}

// users

func (g *stubGateway) FindUsers(_ context.Context, f ports.UserFilter) ([]domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("FindUsers"); err != nil {
		return nil, err
	}
	var out []domain.User
	for _, u := range g.users {
		if f.Username != "" && u.Username != f.Username {
			continue
		}
		if f.Password != "" && u.Password != f.Password {
			continue
		}
		if f.Email != "" && u.Email != f.Email {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (g *stubGateway) GetUser(_ context.Context, id domain.ID) (*domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("GetUser"); err != nil {
		return nil, err
	}
	u, ok := g.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (g *stubGateway) Register(_ context.Context, u domain.User) (*domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("Register"); err != nil {
		return nil, err
	}
	u.ID = g.nextID()
	g.users[u.ID] = u
	return &u, nil
}

func (g *stubGateway) CreateUser(_ context.Context, u domain.User) (*domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("CreateUser"); err != nil {
		return nil, err
	}
	u.ID = g.nextID()
	g.users[u.ID] = u
	return &u, nil
}

func (g *stubGateway) UpdateUser(_ context.Context, u domain.User) (*domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdateUser"); err != nil {
		return nil, err
	}
	g.users[u.ID] = u
	return &u, nil
}

func (g *stubGateway) DeleteUser(_ context.Context, id domain.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("DeleteUser"); err != nil {
		return err
	}
	delete(g.users, id)
	return nil
}

func (g *stubGateway) ListAllUsers(_ context.Context) ([]domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListAllUsers"); err != nil {
		return nil, err
	}
	return values(g.users), nil
}

// packages

func (g *stubGateway) ListPackages(_ context.Context) ([]domain.Package, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListPackages"); err != nil {
		return nil, err
	}
	return values(g.packages), nil
}

func (g *stubGateway) GetPackage(_ context.Context, id domain.ID) (*domain.Package, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("GetPackage"); err != nil {
		return nil, err
	}
	p, ok := g.packages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (g *stubGateway) CreatePackage(_ context.Context, p domain.Package) (*domain.Package, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("CreatePackage"); err != nil {
		return nil, err
	}
	p.ID = g.nextID()
	g.packages[p.ID] = p
	return &p, nil
}

func (g *stubGateway) UpdatePackage(_ context.Context, p domain.Package) (*domain.Package, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdatePackage"); err != nil {
		return nil, err
	}
	g.packages[p.ID] = p
	return &p, nil
}

func (g *stubGateway) DeletePackage(_ context.Context, id domain.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("DeletePackage"); err != nil {
		return err
	}
	delete(g.packages, id)
	return nil
}

// bookings

func (g *stubGateway) ListBookings(_ context.Context, f ports.BookingFilter) ([]domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListBookings"); err != nil {
		return nil, err
	}
	var out []domain.Booking
	for _, b := range g.bookings {
		if f.UserID == "" || b.UserID == f.UserID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (g *stubGateway) ListAllBookings(_ context.Context) ([]domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListAllBookings"); err != nil {
		return nil, err
	}
	return values(g.bookings), nil
}

func (g *stubGateway) GetBooking(_ context.Context, id domain.ID) (*domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("GetBooking"); err != nil {
		return nil, err
	}
	b, ok := g.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (g *stubGateway) CreateBooking(_ context.Context, b domain.Booking) (*domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("CreateBooking"); err != nil {
		return nil, err
	}
	b.ID = g.nextID()
	g.bookings[b.ID] = b
	return &b, nil
}

func (g *stubGateway) UpdateBooking(_ context.Context, b domain.Booking) (*domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdateBooking"); err != nil {
		return nil, err
	}
	g.bookings[b.ID] = b
	return &b, nil
}

func (g *stubGateway) UpdateBookingStatus(_ context.Context, id domain.ID, status domain.BookingStatus) (*domain.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdateBookingStatus"); err != nil {
		return nil, err
	}
	b, ok := g.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Status = status
	g.bookings[id] = b
	return &b, nil
}

// trips

func (g *stubGateway) ListTrips(_ context.Context, f ports.TripFilter) ([]domain.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListTrips"); err != nil {
		return nil, err
	}
	var out []domain.Trip
	for _, t := range g.trips {
		if f.UserID == "" || t.UserID == f.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (g *stubGateway) ListAllTrips(_ context.Context) ([]domain.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListAllTrips"); err != nil {
		return nil, err
	}
	return values(g.trips), nil
}

func (g *stubGateway) GetTrip(_ context.Context, id domain.ID) (*domain.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("GetTrip"); err != nil {
		return nil, err
	}
	t, ok := g.trips[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (g *stubGateway) CreateTrip(_ context.Context, t domain.Trip) (*domain.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("CreateTrip"); err != nil {
		return nil, err
	}
	t.ID = g.nextID()
	g.trips[t.ID] = t
	return &t, nil
}

func (g *stubGateway) UpdateTrip(_ context.Context, t domain.Trip) (*domain.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdateTrip"); err != nil {
		return nil, err
	}
	g.trips[t.ID] = t
	return &t, nil
}

func (g *stubGateway) DeleteTrip(_ context.Context, id domain.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("DeleteTrip"); err != nil {
		return err
	}
	delete(g.trips, id)
	return nil
}

// expenses

func (g *stubGateway) ListExpenses(_ context.Context, f ports.ExpenseFilter) ([]domain.Expense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListExpenses"); err != nil {
		return nil, err
	}
	var out []domain.Expense
	for _, e := range g.expenses {
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		if f.TripID != "" && !domain.SameID(e.TripID, f.TripID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (g *stubGateway) ListAllExpenses(_ context.Context) ([]domain.Expense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("ListAllExpenses"); err != nil {
		return nil, err
	}
	return values(g.expenses), nil
}

func (g *stubGateway) GetExpense(_ context.Context, id domain.ID) (*domain.Expense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("GetExpense"); err != nil {
		return nil, err
	}
	e, ok := g.expenses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (g *stubGateway) CreateExpense(_ context.Context, e domain.Expense) (*domain.Expense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("CreateExpense"); err != nil {
		return nil, err
	}
	e.ID = g.nextID()
	g.expenses[e.ID] = e
	return &e, nil
}

func (g *stubGateway) UpdateExpense(_ context.Context, e domain.Expense) (*domain.Expense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("UpdateExpense"); err != nil {
		return nil, err
	}
	g.expenses[e.ID] = e
	return &e, nil
}

func (g *stubGateway) DeleteExpense(_ context.Context, id domain.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.call("DeleteExpense"); err != nil {
		return err
	}
	delete(g.expenses, id)
	return nil
}

func values[T any](m map[domain.ID]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

var _ ports.Gateway = (*stubGateway)(nil)

// ---------------------------------------------------------------------------
// Session store, guard and activity stubs
// ---------------------------------------------------------------------------

type stubStore struct {
	identity *domain.Identity
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (s *stubStore) Load(context.Context) (*domain.Identity, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.identity, nil
}

func (s *stubStore) Save(_ context.Context, id domain.Identity) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.identity = &id
	return nil
}

func (s *stubStore) Clear(context.Context) error {
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.identity = nil
	return nil
}

// stubGuard holds keys until released; held keys fail with ErrActionPending.
type stubGuard struct {
	mu       sync.Mutex
	held     map[string]bool
	acquired []string
}

func newStubGuard() *stubGuard { return &stubGuard{held: make(map[string]bool)} }

func (g *stubGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[key] {
		return nil, domain.ErrActionPending
	}
	g.held[key] = true
	g.acquired = append(g.acquired, key)
	return func() {
		g.mu.Lock()
		delete(g.held, key)
		g.mu.Unlock()
	}, nil
}

type stubRecorder struct {
	err      error
	recorded []domain.Activity
}

func (r *stubRecorder) Record(_ context.Context, a domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.recorded = append(r.recorded, a)
	return nil
}

type stubSearcher struct {
	options []domain.TransportOption
	err     error
}

func (s *stubSearcher) Search(context.Context, string, string, domain.Date) ([]domain.TransportOption, error) {
	return s.options, s.err
}
