package ledger

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

var ErrInsufficientFunds = errors.New("insufficient wallet funds")

// Wallet is the native currency balance an account holds outside the marketplace
type Wallet struct {
	Account   domain.Address `json:"account" bson:"account"`
	Balance   domain.Balance `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Repo moves native value between wallets. It serves as the marketplace treasury.
type Repo interface {
	marketplace.Treasury

	BalanceOf(c ctx.Ctx, account domain.Address) (domain.Balance, error)
	// Credit mints amount into account, used to fund wallets
	Credit(c ctx.Ctx, account domain.Address, amount domain.Balance) error
}
