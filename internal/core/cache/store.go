package cache

import "context"

// Store 緩存後端介面，記憶體與 Redis 兩種實作共用
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
