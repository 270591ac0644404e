package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/healthcheck"
	mockHealthcheck "github.com/x-xyz/marketcore/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	repo := &mockHealthcheck.Repo{}
	defer repo.AssertExpectations(t)
	im := New(repo)

	repo.On("PingMongo", mock.Anything).Return(nil).Once()
	repo.On("PingRedis", mock.Anything).Return(nil).Once()
	report, err := im.Check(ctx.Background())
	require.NoError(t, err)
	require.Equal(t, healthcheck.Report{"mongo": "ok", "redis": "ok"}, report)

	repo.On("PingMongo", mock.Anything).Return(nil).Once()
	repo.On("PingRedis", mock.Anything).Return(errors.New("dial tcp: refused")).Once()
	report, err = im.Check(ctx.Background())
	require.ErrorIs(t, err, healthcheck.ErrUnhealthy)
	require.Equal(t, healthcheck.Report{"mongo": "ok", "redis": "down"}, report)
}
