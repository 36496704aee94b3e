package cache

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

type avatarCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, string]
}

type CacheAdapter struct {
	avatarCache *avatarCache
	logger      out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	lruAvatarCache, err := lru.New[string, string](cfg.Avatar.CacheSize)
	if err != nil {
		logger.Error("cache.avatar.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Avatar.CacheSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		avatarCache: &avatarCache{
			cache: lruAvatarCache,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

// Кэширование аватаров

func avatarCacheKey(key out.AvatarCacheKey) string {
	return fmt.Sprintf("%s-%s-%s-%d", key.Name, key.Background, key.Color, key.Size)
}

func (c *CacheAdapter) GetAvatarURL(ctx context.Context, key out.AvatarCacheKey) (string, bool) {
	c.avatarCache.mu.RLock()
	defer c.avatarCache.mu.RUnlock()

	avatarURL, exists := c.avatarCache.cache.Get(avatarCacheKey(key))
	if !exists {
		c.logger.Debug("cache.avatar.get.miss", out.LogFields{
			"name": key.Name,
		})
		return "", false
	}

	return avatarURL, true
}

func (c *CacheAdapter) StoreAvatarURL(ctx context.Context, key out.AvatarCacheKey, avatarURL string) {
	c.avatarCache.mu.Lock()
	defer c.avatarCache.mu.Unlock()

	c.avatarCache.cache.Add(avatarCacheKey(key), avatarURL)
}

func (c *CacheAdapter) InvalidateAllAvatarCache(ctx context.Context) {
	c.avatarCache.mu.Lock()
	defer c.avatarCache.mu.Unlock()

	c.avatarCache.cache.Purge()
}

func (c *CacheAdapter) Len() int {
	c.avatarCache.mu.RLock()
	defer c.avatarCache.mu.RUnlock()

	return c.avatarCache.cache.Len()
}
