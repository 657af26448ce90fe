package store

import "context"

// KV is the storage the persistence services write through. Production
// uses Redis, tests inject MemoryKV.
type KV interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

const (
	UsersKey           = "saaHlaUsers"
	CurrentUserKey     = "saaHlaCurrentUser"
	PortfolioKeyPrefix = "saaHla_portfolio_"
)
