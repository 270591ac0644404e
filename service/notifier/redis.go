package notifier

import (
	"encoding/json"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/redis"
)

type redisSink struct {
	redis   redis.Service
	channel string
}

// NewRedis publishes every event as json on a redis channel
func NewRedis(r redis.Service, channel string) Sink {
	return &redisSink{r, channel}
}

func (s *redisSink) Name() string {
	return "redis"
}

func (s *redisSink) Send(c ctx.Ctx, evt marketplace.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	receivers, err := s.redis.Publish(c, s.channel, payload)
	if err != nil {
		return err
	}
	c.WithField("receivers", receivers).Debug("event published")
	return nil
}
