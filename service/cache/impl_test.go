package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/redisclient"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/service/cache/provider"
	cacheRedis "github.com/x-xyz/marketcore/service/cache/provider/redis"
	"github.com/x-xyz/marketcore/service/redis"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Royalty uint16 `json:"royalty"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	srv := miniredis.RunT(ts.T())
	pool, err := redisclient.ConnectRedis(srv.Addr(), "")
	ts.Require().NoError(err)
	ts.cache = cacheRedis.NewRedis(redis.New("test", metrics.New("test"), &redis.Pools{Src: pool}))
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{500}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetDel() {
	var (
		k = "key"
		v = value{250}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "key"
		v     = value{100}
		c     = &value{}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncMiss() {
	c := &value{}

	ts.Equal(ErrNotFound, ts.im.GetByFunc(mockCtx, "absent", c, func() (interface{}, error) {
		return (*value)(nil), nil
	}))
	_, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, "absent"))
	ts.Equal(provider.ErrNotFound, err)

	errGetter := errors.New("getter failed")
	ts.Equal(errGetter, ts.im.GetByFunc(mockCtx, "absent", c, func() (interface{}, error) {
		return nil, errGetter
	}))
}
