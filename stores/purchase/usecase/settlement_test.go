package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	mockCollection "github.com/x-xyz/marketcore/domain/collection/mocks"
	mockEscrow "github.com/x-xyz/marketcore/domain/escrow/mocks"
	"github.com/x-xyz/marketcore/domain/fee"
	mockFee "github.com/x-xyz/marketcore/domain/fee/mocks"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mockOffer "github.com/x-xyz/marketcore/domain/offer/mocks"
	"github.com/x-xyz/marketcore/service/invocation"
	"github.com/x-xyz/marketcore/service/notifier"
)

// wallets keeps balances in memory and refuses payouts to accounts in reject
type wallets struct {
	balances map[domain.Address]domain.Balance
	reject   map[domain.Address]bool
}

func (w *wallets) Account() domain.Address {
	return market
}

func (w *wallets) move(from, to domain.Address, amount domain.Balance) error {
	left, err := w.balances[from].Sub(amount)
	if err != nil {
		return err
	}
	got, err := w.balances[to].Add(amount)
	if err != nil {
		return err
	}
	w.balances[from] = left
	w.balances[to] = got
	return nil
}

func (w *wallets) Receive(c ctx.Ctx, from domain.Address, amount domain.Balance) error {
	return w.move(from, market, amount)
}

func (w *wallets) Pay(c ctx.Ctx, to domain.Address, amount domain.Balance) error {
	if w.reject[to] {
		return errRejected
	}
	return w.move(market, to, amount)
}

type ownership struct {
	owner    domain.Address
	approved domain.Address
}

// tokens holds a single collection and restores a transferred token when
// the invocation fails, the way the mongo registry does
type tokens struct {
	items map[domain.TokenId]*ownership
}

func (r *tokens) OwnerOf(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.Address, error) {
	t, ok := r.items[tokenId]
	if !ok {
		return nil, nil
	}
	owner := t.owner
	return &owner, nil
}

func (r *tokens) Allowance(c ctx.Ctx, collection domain.Address, owner, operator domain.Address, tokenId domain.TokenId) (bool, error) {
	t, ok := r.items[tokenId]
	if !ok || !t.owner.Equals(owner) {
		return false, nil
	}
	return t.owner.Equals(operator) || t.approved.Equals(operator), nil
}

func (r *tokens) Transfer(c ctx.Ctx, collection domain.Address, operator, to domain.Address, tokenId domain.TokenId) error {
	t, ok := r.items[tokenId]
	if !ok {
		return marketplace.ErrTokenDoesNotExist
	}
	if !t.owner.Equals(operator) && !t.approved.Equals(operator) {
		return marketplace.ErrTokenNotApproved
	}
	prev := *t
	t.owner = to
	t.approved = ""
	invocation.OnRollback(c, func(ctx.Ctx) error {
		*t = prev
		return nil
	})
	return nil
}

type book struct {
	items map[listing.Id]listing.Listing
}

func (b *book) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, ok := b.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (b *book) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res := []*listing.Listing{}
	for _, l := range b.items {
		l := l
		res = append(res, &l)
	}
	return res, nil
}

func (b *book) Upsert(c ctx.Ctx, value listing.Listing) error {
	b.items[value.ToId()] = value
	return nil
}

func (b *book) Remove(c ctx.Ctx, id listing.Id) error {
	if _, ok := b.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(b.items, id)
	return nil
}

// settlementSuite runs purchases against in-memory state without a database
// transaction, so every failure must leave that state as it was
type settlementSuite struct {
	suite.Suite

	wallets    *wallets
	tokens     *tokens
	book       *book
	collection *mockCollection.UseCase
	fee        *mockFee.UseCase
	im         *impl
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(settlementSuite))
}

func (s *settlementSuite) SetupTest() {
	s.wallets = &wallets{
		balances: map[domain.Address]domain.Balance{buyer: domain.NewBalance(1000)},
		reject:   map[domain.Address]bool{},
	}
	s.tokens = &tokens{items: map[domain.TokenId]*ownership{
		tokenId: {owner: seller, approved: market},
	}}
	s.book = &book{items: map[listing.Id]listing.Listing{
		id: {Collection: nft, TokenId: tokenId, Seller: seller, Price: domain.NewBalance(1000)},
	}}
	s.collection = &mockCollection.UseCase{}
	s.fee = &mockFee.UseCase{}
	s.im = New(&PurchaseUseCaseCfg{
		ListingRepo:  s.book,
		CollectionUC: s.collection,
		FeeUC:        s.fee,
		OfferUC:      &mockOffer.UseCase{},
		EscrowUC:     &mockEscrow.UseCase{},
		Registry:     s.tokens,
		Treasury:     s.wallets,
		Runner:       invocation.NewRunner(invocation.Direct{}, notifier.Noop()),
	}).(*impl)

	s.collection.On("GetRegisteredCollection", mock.Anything, nft).Return(&collection.RegisteredCollection{
		Address:         nft,
		RoyaltyReceiver: author,
		Royalty:         royaltyBps,
	}, nil)
	split, err := fee.ComputeSplit(domain.NewBalance(1000), feeBps, royaltyBps)
	s.Require().NoError(err)
	s.fee.On("Quote", mock.Anything, domain.NewBalance(1000), uint16(royaltyBps)).Return(split, nil)
}

func (s *settlementSuite) buy() error {
	return s.im.Buy(ctx.Background(), marketplace.NewCall(buyer).WithValue(domain.NewBalance(1000)), nft, tokenId)
}

func (s *settlementSuite) balance(account domain.Address) uint64 {
	return s.wallets.balances[account].Big().Uint64()
}

func (s *settlementSuite) assertUntouched() {
	s.Equal(uint64(1000), s.balance(buyer))
	for _, account := range []domain.Address{market, seller, recipient, author} {
		s.Zero(s.balance(account), account)
	}
	s.Equal(ownership{owner: seller, approved: market}, *s.tokens.items[tokenId])
	s.Contains(s.book.items, id)
}

func (s *settlementSuite) TestBuySettles() {
	s.fee.On("GetFeeRecipient", mock.Anything).Return(recipient, nil)

	s.NoError(s.buy())
	s.Zero(s.balance(buyer))
	s.Zero(s.balance(market))
	s.Equal(uint64(925), s.balance(seller))
	s.Equal(uint64(25), s.balance(recipient))
	s.Equal(uint64(50), s.balance(author))
	s.Equal(buyer, s.tokens.items[tokenId].owner)
	s.NotContains(s.book.items, id)
}

func (s *settlementSuite) TestBuyWithoutFeeRecipientLeavesStateUntouched() {
	s.fee.On("GetFeeRecipient", mock.Anything).Return(domain.Address(""), marketplace.ErrFeeRecipientNotSet)

	s.ErrorIs(s.buy(), marketplace.ErrFeeRecipientNotSet)
	s.assertUntouched()
}

func (s *settlementSuite) TestBuySellerPayoutFailureLeavesStateUntouched() {
	s.fee.On("GetFeeRecipient", mock.Anything).Return(recipient, nil)
	s.wallets.reject[seller] = true

	s.ErrorIs(s.buy(), marketplace.ErrTransferToOwnerFailed)
	s.assertUntouched()
}

func (s *settlementSuite) TestBuyRoyaltyPayoutFailureLeavesStateUntouched() {
	s.fee.On("GetFeeRecipient", mock.Anything).Return(recipient, nil)
	s.wallets.reject[author] = true

	s.ErrorIs(s.buy(), marketplace.ErrTransferToAuthorFailed)
	s.assertUntouched()
}

func (s *settlementSuite) TestBuySucceedsAfterFailedAttempt() {
	s.fee.On("GetFeeRecipient", mock.Anything).Return(recipient, nil)
	s.wallets.reject[author] = true
	s.Error(s.buy())

	s.wallets.reject[author] = false
	s.NoError(s.buy())
	s.Equal(buyer, s.tokens.items[tokenId].owner)
	s.Equal(uint64(50), s.balance(author))
}
