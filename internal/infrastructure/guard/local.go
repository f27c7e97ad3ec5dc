// Package guard provides the in-process ActionGuard used by the CLI.
package guard

import (
	"context"
	"fmt"
	"sync"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// Local holds action keys in a map guarded by a mutex.
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var _ ports.ActionGuard = (*Local)(nil)

func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

func (g *Local) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrActionPending)
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
