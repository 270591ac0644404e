package offer

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// Offer is a standing bid backed by the escrow of its bidder. A nil TokenId
// makes it a collection wide offer.
type Offer struct {
	OfferId      uint64          `json:"offerId" bson:"offerId"`
	Bidder       domain.Address  `json:"bidder" bson:"bidder"`
	Collection   domain.Address  `json:"collection" bson:"collection"`
	TokenId      *domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	Quantity     uint64          `json:"quantity" bson:"quantity"`
	PricePerItem domain.Balance  `json:"pricePerItem" bson:"pricePerItem"`
	Extra        string          `json:"extra" bson:"extra"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}

// Total is quantity * pricePerItem
func (o Offer) Total() (domain.Balance, error) {
	return o.PricePerItem.Mul(o.Quantity)
}

// Covers reports whether tokenId can settle this offer
func (o Offer) Covers(tokenId domain.TokenId) bool {
	return o.TokenId == nil || *o.TokenId == tokenId
}

type MakeOfferParams struct {
	Collection   domain.Address  `json:"collection" validate:"required,address"`
	TokenId      *domain.TokenId `json:"tokenId"`
	Quantity     uint64          `json:"quantity"`
	PricePerItem domain.Balance  `json:"pricePerItem"`
	Extra        string          `json:"extra"`
}

type FindAllOptions struct {
	SortBy     *string         `bson:"-"`
	SortDir    *domain.SortDir `bson:"-"`
	Offset     *int32          `bson:"-"`
	Limit      *int32          `bson:"-"`
	Bidder     *domain.Address `bson:"bidder,omitempty"`
	Collection *domain.Address `bson:"collection,omitempty"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithBidder(bidder domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Bidder = bidder.ToLowerPtr()
		return nil
	}
}

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

type Repo interface {
	// NextId allocates the next offer id, ids start at 1 and are never reused
	NextId(c ctx.Ctx) (uint64, error)
	FindOne(c ctx.Ctx, offerId uint64) (*Offer, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Offer, error)
	Insert(c ctx.Ctx, value Offer) error
	PatchQuantity(c ctx.Ctx, offerId uint64, quantity uint64) error
	Remove(c ctx.Ctx, offerId uint64) error
}

type UseCase interface {
	MakeOffer(c ctx.Ctx, call marketplace.Call, params MakeOfferParams) (uint64, error)
	CancelOffer(c ctx.Ctx, call marketplace.Call, offerId uint64) error
	// GetOffer fails with ErrOfferNotFound
	GetOffer(c ctx.Ctx, offerId uint64) (*Offer, error)
	// GetOfferActive is false for unknown offers and for offers the bidder can no longer cover
	GetOfferActive(c ctx.Ctx, offerId uint64) (bool, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Offer, error)
	// Fill consumes one unit of the offer, removing it once exhausted
	Fill(c ctx.Ctx, o Offer) error
}
