package purchase

import (
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// UseCase settles trades. Every method is guarded against re-entry.
type UseCase interface {
	// Buy purchases a listed token with the value attached to call
	Buy(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId) error
	// AcceptOffer sells one unit of tokenId to the bidder of offerId, called by the token owner
	AcceptOffer(c ctx.Ctx, call marketplace.Call, offerId uint64, tokenId domain.TokenId) error
	// FulfillOffer settles offerId against the listing of tokenId, called by the bidder
	FulfillOffer(c ctx.Ctx, call marketplace.Call, offerId uint64, tokenId domain.TokenId) error
}
