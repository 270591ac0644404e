package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/domain/healthcheck"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

func New(mgoClient *mongoclient.Client, redisCache redis.Service) healthcheck.Repo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingMongo(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingRedis(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
