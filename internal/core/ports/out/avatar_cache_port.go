package out

import "context"

type AvatarCacheKey struct {
	Name       string
	Background string
	Color      string
	Size       int
}

type AvatarCachePort interface {
	GetAvatarURL(ctx context.Context, key AvatarCacheKey) (string, bool)
	StoreAvatarURL(ctx context.Context, key AvatarCacheKey, url string)
	InvalidateAllAvatarCache(ctx context.Context)
}
