package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/nubecart/storefront/internal/api/middleware"
)

// CreateTestRequest builds a request carrying a discard logger in context,
// matching what the logging middleware would have injected.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// MemCache is an in-memory cache.Cache for tests. It stores the JSON form
// so round trips exercise the same serialization as the Redis backend.
type MemCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	GetErr error
	SetErr error
}

func NewMemCache() *MemCache {
	return &MemCache{entries: make(map[string][]byte)}
}

func (m *MemCache) Get(ctx context.Context, key string, value any) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}

	m.mu.Lock()
	data, ok := m.entries[key]
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	return true, json.Unmarshal(data, value)
}

func (m *MemCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()

	return nil
}

func (m *MemCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *MemCache) Close() error {
	return nil
}
