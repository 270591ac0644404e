package invocation

import (
	"context"

	"github.com/google/uuid"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/goroutine"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

var met = metrics.New("invocation")

// Transactor runs fn atomically. RunWithTransaction of query.Mongo satisfies it.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

// Direct runs fn without a transaction, for standalone mongo and tests
type Direct struct{}

func (Direct) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	return fn(c)
}

// Runner executes mutating operations one at a time. An operation started
// from inside a running one joins it instead of waiting.
type Runner interface {
	Run(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

type scopeKey struct{}

type scope struct {
	events []marketplace.Event
	hooks  []func(ctx.Ctx)
	undo   []func(ctx.Ctx) error
	// set while undo runs, undo steps register nothing new
	rollingBack bool
}

// rollback runs the undo steps newest first. A failing step is logged and
// the remaining steps still run.
func (s *scope) rollback(c ctx.Ctx) {
	s.rollingBack = true
	for i := len(s.undo) - 1; i >= 0; i-- {
		if err := s.undo[i](c); err != nil {
			met.BumpSum("rollback.fail", 1)
			c.WithField("err", err).Error("rollback step failed")
		}
	}
	s.undo = nil
}

func scopeOf(c context.Context) *scope {
	s, _ := c.Value(scopeKey{}).(*scope)
	return s
}

type runner struct {
	tx       Transactor
	notifier marketplace.Notifier
	sem      chan struct{}
}

func NewRunner(tx Transactor, notifier marketplace.Notifier) Runner {
	return &runner{
		tx:       tx,
		notifier: notifier,
		sem:      make(chan struct{}, 1),
	}
}

func (r *runner) Run(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	if scopeOf(c) != nil {
		return fn(c)
	}

	select {
	case <-c.Done():
		return c.Err()
	case r.sem <- struct{}{}:
	}

	timer := met.BumpTime("time")
	c = ctx.WithValue(c, "invocationId", uuid.NewString())
	var s *scope
	err := r.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		// a retried transaction starts over with an empty outbox
		s = &scope{}
		c = ctx.WithContext(c, context.WithValue(c.Context, scopeKey{}, s))
		if err := fn(c); err != nil {
			// inside a transaction the undo steps abort with everything else
			s.rollback(c)
			return err
		}
		return nil
	})
	<-r.sem
	timer.End()

	if err != nil {
		met.BumpSum("fail", 1)
		return err
	}
	met.BumpSum("success", 1)

	dc := ctx.Detach(c)
	for _, hook := range s.hooks {
		hook := hook
		goroutine.Recover(func() { hook(dc) })
	}
	for _, evt := range s.events {
		r.notifier.Notify(dc, evt)
	}
	return nil
}

// Emit queues evt for delivery once the running invocation commits.
// Outside of an invocation the event is dropped.
func Emit(c ctx.Ctx, evt marketplace.Event) {
	s := scopeOf(c)
	if s == nil {
		c.WithField("event", evt.Type).Warn("event emitted outside of an invocation")
		return
	}
	s.events = append(s.events, evt)
}

// OnRollback registers fn to revert a write made by the running invocation.
// Registered steps run newest first when the invocation fails, so writes
// outside a transaction are reverted as well. Outside of an invocation
// nothing is registered.
func OnRollback(c ctx.Ctx, fn func(ctx.Ctx) error) {
	s := scopeOf(c)
	if s == nil || s.rollingBack {
		return
	}
	s.undo = append(s.undo, fn)
}

// AfterCommit defers fn until the running invocation commits. It never runs
// when the invocation fails. Outside of an invocation fn runs immediately.
func AfterCommit(c ctx.Ctx, fn func(ctx.Ctx)) {
	s := scopeOf(c)
	if s == nil {
		fn(c)
		return
	}
	s.hooks = append(s.hooks, fn)
}
