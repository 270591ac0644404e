package marketplace

import (
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

// TokenRegistry is the external ledger of token ownership and approvals
type TokenRegistry interface {
	// OwnerOf returns nil when the token does not exist
	OwnerOf(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.Address, error)
	// Allowance reports whether operator may move the token on behalf of owner
	Allowance(c ctx.Ctx, collection domain.Address, owner, operator domain.Address, tokenId domain.TokenId) (bool, error)
	// Transfer moves the token to `to`, acting as operator
	Transfer(c ctx.Ctx, collection domain.Address, operator, to domain.Address, tokenId domain.TokenId) error
}

// AccessControl resolves the administrative owner of a collection contract
type AccessControl interface {
	// CollectionOwner returns nil when the collection has no known owner
	CollectionOwner(c ctx.Ctx, collection domain.Address) (*domain.Address, error)
}

// Treasury moves native value between accounts and the marketplace account
type Treasury interface {
	// Account is the marketplace's own account
	Account() domain.Address
	// Receive takes the value attached to a call from the payer
	Receive(c ctx.Ctx, from domain.Address, amount domain.Balance) error
	// Pay sends value out of the marketplace account
	Pay(c ctx.Ctx, to domain.Address, amount domain.Balance) error
}

// Notifier delivers events to observers. It never fails the caller.
type Notifier interface {
	Notify(c ctx.Ctx, evt Event)
}
