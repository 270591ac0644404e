package ctx

import (
	"context"
	"time"

	"github.com/x-xyz/marketcore/base/log"
)

// Ctx carries a request scoped logger alongside the standard context
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithContext swaps the underlying context and keeps the logger fields
func WithContext(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}

// Detach returns a background context that keeps the logger fields of parent.
// Work scheduled after a request returns must not inherit its cancellation.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  parent.Logger,
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
