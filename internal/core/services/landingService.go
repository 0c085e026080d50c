package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sm8ta/cogniwork_web/internal/core/domain"
	"github.com/sm8ta/cogniwork_web/internal/core/ports"
)

const DefaultLandingTTL = 15 * time.Minute

type LandingService struct {
	logger ports.LoggerPort
	cache  ports.CachePort
	ttl    time.Duration
}

func NewLandingService(logger ports.LoggerPort, cache ports.CachePort, ttl time.Duration) *LandingService {
	if ttl <= 0 {
		ttl = DefaultLandingTTL
	}
	return &LandingService{
		logger: logger,
		cache:  cache,
		ttl:    ttl,
	}
}

func (s *LandingService) Variants() []string {
	names := make([]string, 0, len(landingCatalog))
	for name := range landingCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *LandingService) GetPage(ctx context.Context, variant string) (*domain.LandingPage, error) {
	if variant == "" {
		variant = domain.VariantMarketing
	}

	build, ok := landingCatalog[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, variant)
	}

	cacheKey := landingCacheKey(variant)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedPage domain.LandingPage
		if err := json.Unmarshal(cachedData, &cachedPage); err == nil {
			s.logger.Debug("Landing page found in cache", map[string]interface{}{
				"variant": variant,
			})
			return &cachedPage, nil
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("Failed to read landing page cache", map[string]interface{}{
			"error":   err.Error(),
			"variant": variant,
		})
	}

	page := build()

	pageData, err := json.Marshal(page)
	if err != nil {
		s.logger.Warn("Failed to marshal landing page for cache", map[string]interface{}{
			"error":   err.Error(),
			"variant": variant,
		})
	} else if err := s.cache.Set(cacheKey, pageData, s.ttl); err != nil {
		s.logger.Warn("Failed to cache landing page", map[string]interface{}{
			"error":   err.Error(),
			"variant": variant,
		})
	}

	return page, nil
}

// InvalidateCache drops every cached landing page so the next request
// rebuilds it from the catalogue.
func (s *LandingService) InvalidateCache(ctx context.Context) error {
	var errs []error
	for _, variant := range s.Variants() {
		if err := s.cache.Delete(landingCacheKey(variant)); err != nil {
			s.logger.Warn("Failed to invalidate landing page cache", map[string]interface{}{
				"error":   err.Error(),
				"variant": variant,
			})
			errs = append(errs, fmt.Errorf("%s: %w", variant, err))
		}
	}
	return errors.Join(errs...)
}

func landingCacheKey(variant string) string {
	return fmt.Sprintf("landing:%s", variant)
}
