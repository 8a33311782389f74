package main

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/appctx"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/karlseguin/ccache/v2"
)

type readCacheCtxKey struct{}

type CacheSettings struct {
	Ttl time.Duration `cfg:"ttl" default:"10m"`
}

// ReadCache is a small time boxed cache in front of the read paths. Any
// successful maintenance run invalidates it completely, so readers never see
// metrics from before a layout change.
type ReadCache struct {
	cache *ccache.Cache
	ttl   time.Duration
}

func ProvideReadCache(ctx context.Context, config cfg.Config) (*ReadCache, error) {
	return appctx.Provide(ctx, readCacheCtxKey{}, func() (*ReadCache, error) {
		settings := &CacheSettings{}
		if err := config.UnmarshalKey("cache", settings); err != nil {
			return nil, fmt.Errorf("could not unmarshal cache settings: %w", err)
		}

		return NewReadCacheWithInterfaces(settings.Ttl), nil
	})
}

func NewReadCacheWithInterfaces(ttl time.Duration) *ReadCache {
	return &ReadCache{
		cache: ccache.New(ccache.Configure()),
		ttl:   ttl,
	}
}

func (c *ReadCache) Get(key string) (any, bool) {
	item := c.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}

	return item.Value(), true
}

func (c *ReadCache) Set(key string, value any) {
	c.cache.Set(key, value, c.ttl)
}

func (c *ReadCache) Clear() {
	c.cache.Clear()
}

func cacheKey(kind string, schema string, table string) string {
	return fmt.Sprintf("%s/%s/%s", kind, schema, table)
}
