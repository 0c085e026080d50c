package ports

import "time"

// CachePort returns domain.ErrCacheMiss from Get when the key is not set.
type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
