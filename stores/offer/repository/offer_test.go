package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/offer"
	"github.com/x-xyz/marketcore/service/query"
	mockQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

var mockCtx = ctx.Background()

type offerRepoSuite struct {
	suite.Suite
	q  *mockQuery.Mongo
	im offer.Repo
}

func TestOfferRepo(t *testing.T) {
	suite.Run(t, new(offerRepoSuite))
}

func (s *offerRepoSuite) SetupTest() {
	s.q = &mockQuery.Mongo{}
	s.im = NewOffer(s.q)
}

func (s *offerRepoSuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
}

func (s *offerRepoSuite) TestNextIdIsMonotonic() {
	seq := uint64(0)
	s.q.On("IncrementMany", mock.Anything, domain.TableCounters, bson.M{"_id": counterKey}, bson.M{"seq": 1}, bson.M(nil), mock.Anything).
		Run(func(args mock.Arguments) {
			seq++
			args.Get(5).(*counter).Seq = seq
		}).Return(nil).Times(3)

	for want := uint64(1); want <= 3; want++ {
		id, err := s.im.NextId(mockCtx)
		s.NoError(err)
		s.Equal(want, id)
	}
}

func (s *offerRepoSuite) TestFindOneMissing() {
	s.q.On("FindOne", mock.Anything, domain.TableOffers, bson.M{"offerId": uint64(7)}, mock.Anything).Return(query.ErrNotFound).Once()

	_, err := s.im.FindOne(mockCtx, 7)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *offerRepoSuite) TestInsertLowercases() {
	s.q.On("Insert", mock.Anything, domain.TableOffers, mock.MatchedBy(func(o offer.Offer) bool {
		return o.Bidder == "0xabc" && o.Collection == "0xdef"
	})).Return(nil).Once()

	s.NoError(s.im.Insert(mockCtx, offer.Offer{OfferId: 1, Bidder: "0xABC", Collection: "0xDEF"}))
}

func (s *offerRepoSuite) TestInsertDuplicate() {
	s.q.On("Insert", mock.Anything, domain.TableOffers, mock.Anything).Return(query.ErrDuplicateKey).Once()

	s.ErrorIs(s.im.Insert(mockCtx, offer.Offer{OfferId: 1}), domain.ErrConflict)
}

func (s *offerRepoSuite) TestPatchQuantity() {
	s.q.On("Patch", mock.Anything, domain.TableOffers, bson.M{"offerId": uint64(3)}, bson.M{"quantity": uint64(1)}).Return(nil).Once()

	s.NoError(s.im.PatchQuantity(mockCtx, 3, 1))
}

func (s *offerRepoSuite) TestFindAllByBidder() {
	bidder := domain.Address("0xabc")
	s.q.On("Search", mock.Anything, domain.TableOffers, 0, 10, "-offerId", offer.FindAllOptions{
		Offset: func() *int32 { v := int32(0); return &v }(),
		Limit:  func() *int32 { v := int32(10); return &v }(),
		Bidder: &bidder,
	}, mock.Anything).Return(nil).Once()

	res, err := s.im.FindAll(mockCtx, offer.WithBidder("0xABC"), offer.WithPagination(0, 10))
	s.NoError(err)
	s.Empty(res)
}

func (s *offerRepoSuite) TestRemoveMissing() {
	s.q.On("Remove", mock.Anything, domain.TableOffers, bson.M{"offerId": uint64(9)}).Return(query.ErrNotFound).Once()

	s.ErrorIs(s.im.Remove(mockCtx, 9), domain.ErrNotFound)
}
