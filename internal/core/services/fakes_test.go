package services

import (
	"errors"
	"sync"
	"time"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	gets int
	err  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.err != nil {
		return nil, c.err
	}
	v, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	delete(c.data, key)
	return nil
}

type stubTokens struct {
	token string
	err   error
	calls int
}

func (s *stubTokens) IssueToken(domain.UserRole, string) (string, error) {
	s.calls++
	return s.token, s.err
}

var errBoom = errors.New("boom")

type storedIdentity struct {
	token, role       string
	hasToken, hasRole bool
}

func (s storedIdentity) Token() (string, bool) { return s.token, s.hasToken }
func (s storedIdentity) Role() (string, bool)  { return s.role, s.hasRole }
