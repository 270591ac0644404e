package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/service/cache/provider"
	cacheRedis "github.com/x-xyz/marketcore/service/cache/provider/redis"
	"github.com/x-xyz/marketcore/service/redis"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads the value on a miss. It must return a non nil pointer
// of the container type, or an error.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// high order cache service
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}

// NewShared keeps entries in redis only, so a Del from any process that
// writes the cached data drops the entry for every reader
func NewShared(pfx string, ttl time.Duration, redis redis.Service) Service {
	return New(ServiceConfig{
		Ttl:   ttl,
		Pfx:   pfx,
		Cache: cacheRedis.NewRedis(redis),
	})
}
