package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1

	delBatchSize = 100
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) Name() string {
	return r.name
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrGapTime
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// release the connection asap so the pool does not grow under load
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(funcName, key string) []string {
	return []string{"func", funcName, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) bumpTTL(expire time.Duration, tags []string) {
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err != nil {
		if err != ErrNotFound {
			context.WithField("err", err).Error("GET redis failed")
		}
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) GetDel(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("getdel", key)
	defer r.met.BumpTime("time", tags...).End()

	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.Send("MULTI"); err != nil {
		return nil, err
	}
	if err := conn.Send("GET", key); err != nil {
		return nil, err
	}
	if err := conn.Send("DEL", key); err != nil {
		return nil, err
	}
	values, err := redis.Values(conn.Do("EXEC"))
	if err != nil {
		context.WithField("err", err).Error("GETDEL redis failed")
		return nil, err
	}
	return redis.Bytes(values[0], nil)
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTTL(expire, tags)
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).Error("set redis failed")
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("setnx", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTTL(expire, tags)
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = redis.String(r.connDo(context, "SET", key, val, "NX"))
	} else {
		_, err = redis.String(r.connDo(context, "SET", key, val, "NX", "PX", int(expire/time.Millisecond)))
	}
	return err
}

func (r *redImpl) Expire(context ctx.Ctx, key string, ttl time.Duration) error {
	tags := r.tags("expire", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTTL(ttl, tags)

	if ttl == Forever {
		_, err := r.connDo(context, "PERSIST", key)
		if err != nil {
			context.WithField("err", err).Error("Expire PERSIST redis key failed")
		}
		return err
	}

	reply, err := redis.Int(r.connDo(context, "PEXPIRE", key, int(ttl/time.Millisecond)))
	if err != nil {
		context.WithField("err", err).Error("Expire redis failed")
		return err
	}
	// 0 if key does not exist or the timeout could not be set
	if reply != 1 {
		return ErrExpireNotExistOrTimeout
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for start := 0; start < len(ks); start += delBatchSize {
		end := start + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo(context, "DEL", redis.Args{}.AddFlat(ks[start:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

// Exists Returns if the key exists.
func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", r.tags("exists", key)...).End()
	res, err := redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).Error("Exists redis failed")
	}
	return res, err
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()
	res, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}

	switch res {
	case retTTLNoKey:
		return res, ErrNotFound
	case retTTLNoExpire:
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", r.tags("incrby", key)...).End()
	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).Error("INCRBY redis failed")
	}
	return res, err
}

func (r *redImpl) Publish(context ctx.Ctx, channel string, message []byte) (int, error) {
	tags := []string{"func", "publish", "cluster", r.name, "channel", channel}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(message)), tags...)

	res, err := redis.Int(r.connDo(context, "PUBLISH", channel, message))
	if err != nil {
		context.WithField("err", err).Error("PUBLISH redis failed")
	}
	return res, err
}
