package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/factory"
	"github.com/x-xyz/marketcore/service/query"
	mockQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

func TestFindOne(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)
	im := NewContractHash(q)

	q.On("FindOne", mock.Anything, domain.TableContractHashes, bson.M{"contractType": factory.ContractType("erc721")}, mock.Anything).
		Return(query.ErrNotFound).Once()
	_, err := im.FindOne(ctx.Background(), "erc721")
	require.ErrorIs(t, err, domain.ErrNotFound)

	q.On("FindOne", mock.Anything, domain.TableContractHashes, bson.M{"contractType": factory.ContractType("erc721")}, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(*factory.ContractHash).Hash = "0x01"
		}).Return(nil).Once()
	res, err := im.FindOne(ctx.Background(), "erc721")
	require.NoError(t, err)
	require.Equal(t, "0x01", res.Hash)
}

func TestUpsert(t *testing.T) {
	q := &mockQuery.Mongo{}
	defer q.AssertExpectations(t)

	value := factory.ContractHash{ContractType: "erc1155", Hash: "0x02"}
	q.On("Upsert", mock.Anything, domain.TableContractHashes, bson.M{"contractType": factory.ContractType("erc1155")}, value).Return(nil).Once()

	require.NoError(t, NewContractHash(q).Upsert(ctx.Background(), value))
}
