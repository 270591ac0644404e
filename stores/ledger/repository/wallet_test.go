package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/ledger"
	"github.com/x-xyz/marketcore/service/query"
	mockQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

var (
	marketAccount = domain.Address("0x00000000000000000000000000000000000000ff")
	alice         = domain.Address("0x00000000000000000000000000000000000000a1")
)

type walletSuite struct {
	suite.Suite

	q  *mockQuery.Mongo
	im ledger.Repo
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	s.q = &mockQuery.Mongo{}
	s.im = NewWallet(s.q, marketAccount)
}

func (s *walletSuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
}

func (s *walletSuite) holds(account domain.Address, balance uint64) {
	s.q.On("FindOne", mock.Anything, domain.TableWallets, selector(account), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*ledger.Wallet) = ledger.Wallet{Account: account, Balance: domain.NewBalance(balance)}
		}).Return(nil).Once()
}

func (s *walletSuite) saves(account domain.Address, balance uint64) {
	s.q.On("Upsert", mock.Anything, domain.TableWallets, selector(account), mock.MatchedBy(func(w ledger.Wallet) bool {
		return w.Account == account && w.Balance.Equal(domain.NewBalance(balance))
	})).Return(nil).Once()
}

func (s *walletSuite) TestBalanceOfUnknown() {
	s.q.On("FindOne", mock.Anything, domain.TableWallets, selector(alice), mock.Anything).Return(query.ErrNotFound).Once()

	b, err := s.im.BalanceOf(ctx.Background(), alice)
	s.NoError(err)
	s.True(b.IsZero())
}

func (s *walletSuite) TestReceive() {
	s.holds(alice, 1000)
	s.saves(alice, 400)
	s.holds(marketAccount, 50)
	s.saves(marketAccount, 650)

	s.NoError(s.im.Receive(ctx.Background(), alice, domain.NewBalance(600)))
}

func (s *walletSuite) TestReceiveInsufficient() {
	s.holds(alice, 500)

	err := s.im.Receive(ctx.Background(), alice, domain.NewBalance(600))
	s.ErrorIs(err, ledger.ErrInsufficientFunds)
}

func (s *walletSuite) TestPay() {
	s.holds(marketAccount, 100)
	s.saves(marketAccount, 0)
	s.q.On("FindOne", mock.Anything, domain.TableWallets, selector(alice), mock.Anything).Return(query.ErrNotFound).Once()
	s.saves(alice, 100)

	s.NoError(s.im.Pay(ctx.Background(), alice, domain.NewBalance(100)))
}

func (s *walletSuite) TestZeroAndSelfAreNoops() {
	s.NoError(s.im.Pay(ctx.Background(), alice, domain.Balance{}))
	s.NoError(s.im.Pay(ctx.Background(), marketAccount, domain.NewBalance(10)))
}

func (s *walletSuite) TestCreditOverflow() {
	s.q.On("FindOne", mock.Anything, domain.TableWallets, selector(alice), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*ledger.Wallet) = ledger.Wallet{Account: alice, Balance: domain.MaxBalance()}
		}).Return(nil).Once()

	err := s.im.Credit(ctx.Background(), alice, domain.NewBalance(1))
	s.ErrorIs(err, domain.ErrArithmeticOverflow)
}

func (s *walletSuite) TestFindFailed() {
	s.q.On("FindOne", mock.Anything, domain.TableWallets, selector(alice), mock.Anything).Return(errors.New("timeout")).Once()

	_, err := s.im.BalanceOf(ctx.Background(), alice)
	s.Error(err)
}
