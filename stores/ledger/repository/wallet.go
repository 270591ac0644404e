package repository

import (
	"errors"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/ledger"
	"github.com/x-xyz/marketcore/service/query"
)

type walletImpl struct {
	q       query.Mongo
	account domain.Address
}

// NewWallet keeps wallets in mongo. account is the wallet the marketplace
// collects payments into.
func NewWallet(q query.Mongo, account domain.Address) ledger.Repo {
	return &walletImpl{q: q, account: account.ToLower()}
}

func (im *walletImpl) Account() domain.Address {
	return im.account
}

func (im *walletImpl) BalanceOf(c ctx.Ctx, account domain.Address) (domain.Balance, error) {
	w := ledger.Wallet{}
	if err := im.q.FindOne(c, domain.TableWallets, selector(account), &w); errors.Is(err, query.ErrNotFound) {
		return domain.Balance{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.FindOne failed")
		return domain.Balance{}, err
	}
	return w.Balance, nil
}

func (im *walletImpl) Credit(c ctx.Ctx, account domain.Address, amount domain.Balance) error {
	balance, err := im.BalanceOf(c, account)
	if err != nil {
		return err
	}
	if balance, err = balance.Add(amount); err != nil {
		return err
	}
	return im.save(c, account, balance)
}

func (im *walletImpl) debit(c ctx.Ctx, account domain.Address, amount domain.Balance) error {
	balance, err := im.BalanceOf(c, account)
	if err != nil {
		return err
	}
	rest, err := balance.Sub(amount)
	if errors.Is(err, domain.ErrArithmeticUnderflow) {
		return xerrors.Errorf("%w: %s holds %s, needs %s", ledger.ErrInsufficientFunds, account, balance, amount)
	} else if err != nil {
		return err
	}
	return im.save(c, account, rest)
}

func (im *walletImpl) save(c ctx.Ctx, account domain.Address, balance domain.Balance) error {
	w := ledger.Wallet{
		Account:   account.ToLower(),
		Balance:   balance,
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(c, domain.TableWallets, selector(account), w); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

// move is a no-op for zero amounts and for transfers to self
func (im *walletImpl) move(c ctx.Ctx, from, to domain.Address, amount domain.Balance) error {
	if amount.IsZero() || from.Equals(to) {
		return nil
	}
	if err := im.debit(c, from, amount); err != nil {
		return err
	}
	return im.Credit(c, to, amount)
}

func (im *walletImpl) Receive(c ctx.Ctx, from domain.Address, amount domain.Balance) error {
	return im.move(c, from, im.account, amount)
}

func (im *walletImpl) Pay(c ctx.Ctx, to domain.Address, amount domain.Balance) error {
	return im.move(c, im.account, to, amount)
}

type walletId struct {
	Account domain.Address `bson:"account"`
}

func selector(account domain.Address) walletId {
	return walletId{account.ToLower()}
}
