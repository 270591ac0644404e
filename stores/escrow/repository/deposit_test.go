package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/service/query"
	mockQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

func TestFindOne(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)
	im := NewDeposit(q)

	q.On("FindOne", mock.Anything, domain.TableDeposits, bson.M{"account": domain.Address("0xabc")}, mock.Anything).
		Return(query.ErrNotFound).Once()
	_, err := im.FindOne(ctx.Background(), "0xABC")
	require.ErrorIs(t, err, domain.ErrNotFound)

	q.On("FindOne", mock.Anything, domain.TableDeposits, bson.M{"account": domain.Address("0xabc")}, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(*escrow.Deposit).Balance = domain.NewBalance(500)
		}).Return(nil).Once()
	res, err := im.FindOne(ctx.Background(), "0xabc")
	require.NoError(t, err)
	require.Equal(t, domain.NewBalance(500), res.Balance)
}

func TestUpsert(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)

	q.On("Upsert", mock.Anything, domain.TableDeposits, bson.M{"account": domain.Address("0xabc")}, mock.MatchedBy(func(d escrow.Deposit) bool {
		return d.Account == "0xabc" && d.Balance.IsZero()
	})).Return(nil).Once()

	require.NoError(t, NewDeposit(q).Upsert(ctx.Background(), escrow.Deposit{Account: "0xABC"}))
}
