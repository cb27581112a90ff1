package cart

import (
	"context"
	"sync"

	"github.com/nubecart/storefront/internal/cache"
	"github.com/nubecart/storefront/internal/config"
)

// Manager hands out one Store per session id. A store is created and
// hydrated from the persistence backend the first time its session shows
// up, then reused for the lifetime of the process.
type Manager struct {
	mu      sync.Mutex
	backend cache.Cache
	cfg     *config.CartConfig
	stores  map[string]*Store
}

func NewManager(backend cache.Cache, cfg *config.CartConfig) *Manager {
	return &Manager{
		backend: backend,
		cfg:     cfg,
		stores:  make(map[string]*Store),
	}
}

// Store returns the cart store for a session, hydrating persisted state on
// first use.
func (m *Manager) Store(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = newStore(sessionID, m.backend, m.cfg.TTL)
		m.stores[sessionID] = store
	}

	m.mu.Unlock()

	if !ok {
		store.hydrate(ctx)
	}

	return store
}
