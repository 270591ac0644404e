package token

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrContractNotFound = errors.New("token contract not found")
	ErrNotApproved      = errors.New("operator is not approved")
	ErrNotTokenOwner    = errors.New("operator does not own the token")
)

// Contract is an nft contract known to the registry and its administrator
type Contract struct {
	Address   domain.Address `json:"address" bson:"address"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Token struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	// Approved is the single address allowed to move this token
	Approved  *domain.Address `json:"approved,omitempty" bson:"approved,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type TokenId struct {
	Collection domain.Address `bson:"collection"`
	TokenId    domain.TokenId `bson:"tokenId"`
}

// OperatorApproval lets operator move every token of owner in collection
type OperatorApproval struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	Operator   domain.Address `json:"operator" bson:"operator"`
	Approved   bool           `json:"approved" bson:"approved"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Registry is the token ledger the marketplace trades against
type Registry interface {
	marketplace.TokenRegistry
	marketplace.AccessControl

	Deploy(c ctx.Ctx, collection, owner domain.Address) error
	Mint(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId, owner domain.Address) error
	// Approve sets the per token approval, only the token owner may call it
	Approve(c ctx.Ctx, collection domain.Address, owner domain.Address, tokenId domain.TokenId, operator domain.Address) error
	SetApprovalForAll(c ctx.Ctx, collection domain.Address, owner, operator domain.Address, approved bool) error
	FindToken(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*Token, error)
}
