package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	mockCollection "github.com/x-xyz/marketcore/domain/collection/mocks"
	"github.com/x-xyz/marketcore/domain/listing"
	mockListing "github.com/x-xyz/marketcore/domain/listing/mocks"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mockMarketplace "github.com/x-xyz/marketcore/domain/marketplace/mocks"
	"github.com/x-xyz/marketcore/service/invocation"
)

var (
	nft      = domain.Address("0x00000000000000000000000000000000000000a7")
	seller   = domain.Address("0x00000000000000000000000000000000000000a1")
	stranger = domain.Address("0x00000000000000000000000000000000000000e1")
	market   = domain.Address("0x00000000000000000000000000000000000000ff")
	tokenId  = domain.TokenId("42")
	id       = listing.Id{Collection: nft, TokenId: tokenId}
)

type listingSuite struct {
	suite.Suite

	repo       *mockListing.Repo
	collection *mockCollection.UseCase
	registry   *mockMarketplace.TokenRegistry
	treasury   *mockMarketplace.Treasury
	notifier   *mockMarketplace.Notifier
	im         listing.UseCase
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.repo = &mockListing.Repo{}
	s.collection = &mockCollection.UseCase{}
	s.registry = &mockMarketplace.TokenRegistry{}
	s.treasury = &mockMarketplace.Treasury{}
	s.notifier = &mockMarketplace.Notifier{}
	s.im = New(&ListingUseCaseCfg{
		Repo:         s.repo,
		CollectionUC: s.collection,
		Registry:     s.registry,
		Treasury:     s.treasury,
		Runner:       invocation.NewRunner(invocation.Direct{}, s.notifier),
	})

	s.treasury.On("Account").Return(market).Maybe()
}

func (s *listingSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.collection.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *listingSuite) registered() {
	s.collection.On("GetRegisteredCollection", mock.Anything, nft).Return(&collection.RegisteredCollection{Address: nft}, nil).Once()
}

func (s *listingSuite) ownedBy(owner domain.Address) {
	s.registry.On("OwnerOf", mock.Anything, nft, tokenId).Return(&owner, nil).Once()
}

func (s *listingSuite) TestList() {
	s.registered()
	s.ownedBy(seller)
	s.registry.On("Allowance", mock.Anything, nft, seller, market, tokenId).Return(true, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l listing.Listing) bool {
		return l.ToId() == id && l.Seller == seller && l.Price.Equal(domain.NewBalance(1000))
	})).Return(nil).Once()
	s.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventTokenListed && evt.Price != nil && evt.Price.Equal(domain.NewBalance(1000))
	})).Once()

	s.NoError(s.im.List(ctx.Background(), marketplace.NewCall(seller), nft, tokenId, domain.NewBalance(1000)))
}

func (s *listingSuite) TestListFailures() {
	s.Run("not registered", func() {
		s.collection.On("GetRegisteredCollection", mock.Anything, nft).Return(nil, nil).Once()
		err := s.im.List(ctx.Background(), marketplace.NewCall(seller), nft, tokenId, domain.NewBalance(1))
		s.ErrorIs(err, marketplace.ErrNotRegisteredContract)
	})

	s.Run("token missing", func() {
		s.registered()
		s.registry.On("OwnerOf", mock.Anything, nft, tokenId).Return(nil, nil).Once()
		err := s.im.List(ctx.Background(), marketplace.NewCall(seller), nft, tokenId, domain.NewBalance(1))
		s.ErrorIs(err, marketplace.ErrTokenDoesNotExist)
	})

	s.Run("not owner", func() {
		s.registered()
		s.ownedBy(seller)
		err := s.im.List(ctx.Background(), marketplace.NewCall(stranger), nft, tokenId, domain.NewBalance(1))
		s.ErrorIs(err, marketplace.ErrNotOwner)
	})

	s.Run("not approved", func() {
		s.registered()
		s.ownedBy(seller)
		s.registry.On("Allowance", mock.Anything, nft, seller, market, tokenId).Return(false, nil).Once()
		err := s.im.List(ctx.Background(), marketplace.NewCall(seller), nft, tokenId, domain.NewBalance(1))
		s.ErrorIs(err, marketplace.ErrTokenNotApproved)
	})

	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestUnlist() {
	s.repo.On("FindOne", mock.Anything, id).Return(&listing.Listing{Collection: nft, TokenId: tokenId, Seller: seller}, nil).Once()
	s.ownedBy(seller)
	s.repo.On("Remove", mock.Anything, id).Return(nil).Once()
	s.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventTokenListed && evt.Price == nil
	})).Once()

	s.NoError(s.im.Unlist(ctx.Background(), marketplace.NewCall(seller), nft, tokenId))
}

func (s *listingSuite) TestUnlistNotListed() {
	s.repo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	s.ErrorIs(s.im.Unlist(ctx.Background(), marketplace.NewCall(seller), nft, tokenId), marketplace.ErrItemNotListedForSale)
}

func (s *listingSuite) TestUnlistByStranger() {
	s.repo.On("FindOne", mock.Anything, id).Return(&listing.Listing{Collection: nft, TokenId: tokenId, Seller: seller}, nil).Once()
	s.ownedBy(seller)

	s.ErrorIs(s.im.Unlist(ctx.Background(), marketplace.NewCall(stranger), nft, tokenId), marketplace.ErrNotOwner)
}

func (s *listingSuite) TestGetPrice() {
	s.repo.On("FindOne", mock.Anything, id).Return(&listing.Listing{Price: domain.NewBalance(7)}, nil).Once()
	price, err := s.im.GetPrice(ctx.Background(), nft, tokenId)
	s.NoError(err)
	s.Equal(domain.NewBalance(7), *price)

	s.repo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	price, err = s.im.GetPrice(ctx.Background(), nft, tokenId)
	s.NoError(err)
	s.Nil(price)
}

func (s *listingSuite) TestIsListed() {
	s.repo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	listed, err := s.im.IsListed(ctx.Background(), nft, tokenId)
	s.NoError(err)
	s.False(listed)

	s.repo.On("FindOne", mock.Anything, id).Return(nil, errors.New("timeout")).Once()
	_, err = s.im.IsListed(ctx.Background(), nft, tokenId)
	s.Error(err)
}
