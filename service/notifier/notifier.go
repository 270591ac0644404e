package notifier

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/goroutine"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

const scheduleTimeout = 3 * time.Second

var met = metrics.New("notifier")

// Sink delivers one event somewhere. Unlike marketplace.Notifier it reports
// failures, Fanout logs and drops them.
type Sink interface {
	Name() string
	Send(c ctx.Ctx, evt marketplace.Event) error
}

type noop struct{}

// Noop discards every event
func Noop() marketplace.Notifier {
	return noop{}
}

func (noop) Notify(ctx.Ctx, marketplace.Event) {}

type logSink struct{}

// Log writes every event to the process log
func Log() Sink {
	return logSink{}
}

func (logSink) Name() string {
	return "log"
}

func (logSink) Send(c ctx.Ctx, evt marketplace.Event) error {
	c.WithFields(log.Fields{
		"type":       evt.Type,
		"collection": evt.Collection,
		"tokenId":    evt.TokenId,
		"account":    evt.Account,
		"price":      evt.Price,
		"offerId":    evt.OfferId,
	}).Info("marketplace event")
	return nil
}

type fanout struct {
	sinks []Sink
	pool  *goroutines.Pool
}

// Fanout sends every event to each sink on a worker pool. Notify never blocks
// on delivery and never fails.
func Fanout(sinks ...Sink) marketplace.Notifier {
	return &fanout{
		sinks: sinks,
		pool:  goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

func (f *fanout) Notify(c ctx.Ctx, evt marketplace.Event) {
	dc := ctx.Detach(c)
	for _, sink := range f.sinks {
		sink := sink
		err := f.pool.ScheduleWithTimeout(scheduleTimeout, func() {
			goroutine.Recover(func() { f.send(dc, sink, evt) })
		})
		if err != nil {
			met.BumpSum("schedule.err", 1, "sink", sink.Name())
			c.WithFields(log.Fields{
				"err":  err,
				"sink": sink.Name(),
			}).Error("failed to ScheduleWithTimeout")
		}
	}
}

func (f *fanout) send(c ctx.Ctx, sink Sink, evt marketplace.Event) {
	defer met.BumpTime("send.time", "sink", sink.Name()).End()
	if err := sink.Send(c, evt); err != nil {
		met.BumpSum("send.err", 1, "sink", sink.Name(), "type", string(evt.Type))
		c.WithFields(log.Fields{
			"err":  err,
			"sink": sink.Name(),
			"type": evt.Type,
		}).Error("sink.Send failed")
	}
}

// Release stops the worker pool once queued deliveries finish
func Release(n marketplace.Notifier) {
	if f, ok := n.(*fanout); ok {
		f.pool.Release()
	}
}
