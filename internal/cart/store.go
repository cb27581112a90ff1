// Package cart holds the session cart: an explicit store object with a
// mutation API, subscriber notification, and write-through persistence to a
// key-value backend under two fixed keys per session.
package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/cache"
	"github.com/nubecart/storefront/internal/models"
)

// Subscriber receives a snapshot after every cart mutation, in mutation
// order.
type Subscriber func(models.CartSnapshot)

// Store is the authoritative cart state for one session. A mutex keeps
// mutations atomic and applied in dispatch order.
type Store struct {
	mu        sync.Mutex
	sessionID string
	backend   cache.Cache
	ttl       time.Duration // 0 keeps entries forever

	items []models.CartItem
	open  bool
	subs  []Subscriber
}

func newStore(sessionID string, backend cache.Cache, ttl time.Duration) *Store {
	return &Store{
		sessionID: sessionID,
		backend:   backend,
		ttl:       ttl,
		items:     []models.CartItem{},
	}
}

func (s *Store) itemsKey() string {
	return cache.Key(cache.CartItemsKeyPrefix, s.sessionID)
}

func (s *Store) openKey() string {
	return cache.Key(cache.CartOpenKeyPrefix, s.sessionID)
}

// hydrate loads persisted state. Any read or decode failure is logged and
// treated as no persisted state, so the cart simply starts empty.
func (s *Store) hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.LoggerFromContext(ctx)

	var items []models.CartItem

	found, err := s.backend.Get(ctx, s.itemsKey(), &items)
	if err != nil {
		logger.Warn("Failed to load persisted cart items, starting empty",
			slog.String("session_id", s.sessionID), slog.String("error", err.Error()))
	} else if found {
		s.items = items
	}

	var open bool

	found, err = s.backend.Get(ctx, s.openKey(), &open)
	if err != nil {
		logger.Warn("Failed to load persisted cart open flag",
			slog.String("session_id", s.sessionID), slog.String("error", err.Error()))
	} else if found {
		s.open = open
	}

	if s.items == nil {
		s.items = []models.CartItem{}
	}
}

// persist writes the full state back after a mutation. Write failures are
// logged and ignored; the in-memory state remains authoritative for the
// session.
func (s *Store) persist(ctx context.Context) {
	logger := middleware.LoggerFromContext(ctx)

	if err := s.backend.Set(ctx, s.itemsKey(), s.items, s.ttl); err != nil {
		logger.Error("Failed to persist cart items",
			slog.String("session_id", s.sessionID), slog.String("error", err.Error()))
	}

	if err := s.backend.Set(ctx, s.openKey(), s.open, s.ttl); err != nil {
		logger.Error("Failed to persist cart open flag",
			slog.String("session_id", s.sessionID), slog.String("error", err.Error()))
	}
}

// AddItem resolves the product into a cart line and merges it by key. A
// line that already exists has its quantity incremented; a new one is
// appended. Adding always opens the cart panel. Malformed products still
// produce a best-effort line.
func (s *Store) AddItem(ctx context.Context, product *models.Product, quantity int) models.CartSnapshot {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()

	id := product.LineItemID()

	merged := false

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity += quantity
			merged = true

			break
		}
	}

	if !merged {
		s.items = append(s.items, models.CartItem{
			ID:       id,
			Name:     product.Name.Resolve(),
			Price:    product.CanonicalPrice(),
			Quantity: quantity,
			Image:    product.FirstImage(),
		})
	}

	s.open = true

	return s.commit(ctx)
}

// RemoveItem deletes the line with the given key; unknown keys are a no-op.
func (s *Store) RemoveItem(ctx context.Context, id int64) models.CartSnapshot {
	s.mu.Lock()

	s.removeLocked(id)

	return s.commit(ctx)
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or below
// removes the line instead; items never exist with quantity < 1.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) models.CartSnapshot {
	s.mu.Lock()

	if quantity <= 0 {
		s.removeLocked(id)

		return s.commit(ctx)
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity

			break
		}
	}

	return s.commit(ctx)
}

// SetOpen sets the cart panel visibility flag.
func (s *Store) SetOpen(ctx context.Context, open bool) models.CartSnapshot {
	s.mu.Lock()

	s.open = open

	return s.commit(ctx)
}

func (s *Store) removeLocked(id int64) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)

			return
		}
	}
}

// commit persists, snapshots, releases the lock, and notifies subscribers.
// Callers must hold the mutex.
func (s *Store) commit(ctx context.Context) models.CartSnapshot {
	s.persist(ctx)

	snapshot := s.snapshotLocked()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)

	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	return snapshot
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// ItemCount is the sum of line quantities, recomputed on every read.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return countItems(s.items)
}

func (s *Store) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	return models.CartSnapshot{
		Items: items,
		Open:  s.open,
		Count: countItems(items),
	}
}

func countItems(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}
