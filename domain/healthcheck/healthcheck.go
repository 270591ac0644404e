package healthcheck

import (
	"errors"

	"github.com/x-xyz/marketcore/base/ctx"
)

var ErrUnhealthy = errors.New("backing store unavailable")

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

// Report maps each backing store to its status
type Report map[string]string

// UseCase checks the stores the marketplace cannot serve without
type UseCase interface {
	// Check fails with ErrUnhealthy and a partial report when any store is down
	Check(c ctx.Ctx) (Report, error)
}

type Repo interface {
	PingMongo(c ctx.Ctx) error
	PingRedis(c ctx.Ctx) error
}
