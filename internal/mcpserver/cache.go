package mcpserver

import (
	"context"
	"time"

	"hedgeview/internal/catalog"
	"hedgeview/pkg/logging"

	"github.com/patrickmn/go-cache"
)

const providersCacheKey = "providers"

// cachedLister serves repeated list_models calls from memory for ttl.
// Failed fetches are not cached.
type cachedLister struct {
	next  ProviderLister
	cache *cache.Cache
}

func newCachedLister(next ProviderLister, ttl time.Duration) *cachedLister {
	return &cachedLister{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *cachedLister) ListProviders(ctx context.Context) ([]catalog.ModelProvider, error) {
	if cached, found := c.cache.Get(providersCacheKey); found {
		logging.Debug(subsystem, "Returning cached provider catalog")
		return cached.([]catalog.ModelProvider), nil
	}

	providers, err := c.next.ListProviders(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(providersCacheKey, providers, cache.DefaultExpiration)
	return providers, nil
}
