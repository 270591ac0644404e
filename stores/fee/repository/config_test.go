package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/ptr"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/service/query"
	mockQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

func TestGet(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)
	im := NewConfig(q)

	q.On("FindOne", mock.Anything, domain.TableMarketplaceConfig, bson.M{"_id": configKey}, mock.Anything).
		Return(query.ErrNotFound).Once()
	_, err := im.Get(ctx.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)

	q.On("FindOne", mock.Anything, domain.TableMarketplaceConfig, bson.M{"_id": configKey}, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(*configDoc).Config = fee.Config{Fee: 250, MaxFee: 1000}
		}).Return(nil).Once()
	cfg, err := im.Get(ctx.Background())
	require.NoError(t, err)
	require.Equal(t, uint16(250), cfg.Fee)
	require.Equal(t, uint16(1000), cfg.MaxFee)
}

func TestInsertTwice(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)

	q.On("Insert", mock.Anything, domain.TableMarketplaceConfig, configDoc{configKey, fee.Config{MaxFee: 1000}}).
		Return(query.ErrDuplicateKey).Once()

	err := NewConfig(q).Insert(ctx.Background(), fee.Config{MaxFee: 1000})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestPatchOnlySetFields(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)

	now := time.Now()
	q.On("Patch", mock.Anything, domain.TableMarketplaceConfig, bson.M{"_id": configKey}, bson.M{
		"fee":       uint16(0),
		"updatedAt": now,
	}).Return(nil).Once()

	require.NoError(t, NewConfig(q).Patch(ctx.Background(), fee.ConfigPatch{Fee: ptr.Uint16(0), UpdatedAt: now}))
}
