package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketcore/base/ctx"
)

// Forever is the expire value for keys without ttl
const Forever time.Duration = 0

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists without expire
	ErrNoTTL = errors.New("key has no ttl")
	// ErrGapTime is returned when no pool is available for the command
	ErrGapTime = errors.New("redis pool unavailable")
	// ErrExpireNotExistOrTimeout is returned when EXPIRE did not apply
	ErrExpireNotExistOrTimeout = errors.New("key does not exist or the timeout could not be set")
)

// Service is the subset of redis commands the services rely on
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	// GetDel reads and removes key in one round trip
	GetDel(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX fails with ErrNotFound when the key already exists
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Expire(c ctx.Ctx, key string, ttl time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL is in seconds
	TTL(c ctx.Ctx, key string) (int, error)
	Incrby(c ctx.Ctx, key string, val int) (int64, error)
	// Publish returns the number of subscribers that received the message
	Publish(c ctx.Ctx, channel string, message []byte) (int, error)
	Name() string
}
