package escrow

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// Deposit is the escrowed balance of an account held by the marketplace
type Deposit struct {
	Account   domain.Address `json:"account" bson:"account"`
	Balance   domain.Balance `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	FindOne(c ctx.Ctx, account domain.Address) (*Deposit, error)
	Upsert(c ctx.Ctx, value Deposit) error
}

type UseCase interface {
	// Deposit credits the value attached to call and returns the new balance
	Deposit(c ctx.Ctx, call marketplace.Call) (domain.Balance, error)
	Withdraw(c ctx.Ctx, call marketplace.Call, amount domain.Balance) error
	// GetDeposit is zero for unknown accounts
	GetDeposit(c ctx.Ctx, account domain.Address) (domain.Balance, error)
	// Debit takes amount out of the escrow of account for a settlement
	Debit(c ctx.Ctx, account domain.Address, amount domain.Balance) error
}
