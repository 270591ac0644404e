package listing

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// Listing is a fixed price sale offer for a single token
type Listing struct {
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	Price      domain.Balance `json:"price" bson:"price"`
	UpdatedAt  time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Id struct {
	Collection domain.Address `bson:"collection"`
	TokenId    domain.TokenId `bson:"tokenId"`
}

func (l Listing) ToId() Id {
	return Id{Collection: l.Collection, TokenId: l.TokenId}
}

type FindAllOptions struct {
	SortBy     *string         `bson:"-"`
	SortDir    *domain.SortDir `bson:"-"`
	Offset     *int32          `bson:"-"`
	Limit      *int32          `bson:"-"`
	Collection *domain.Address `bson:"collection,omitempty"`
	Seller     *domain.Address `bson:"seller,omitempty"`
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

func WithCollection(collection domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Collection = collection.ToLowerPtr()
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
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
	FindOne(c ctx.Ctx, id Id) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Upsert(c ctx.Ctx, value Listing) error
	Remove(c ctx.Ctx, id Id) error
}

type UseCase interface {
	List(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId, price domain.Balance) error
	Unlist(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId) error
	// GetPrice returns nil when the token is not listed
	GetPrice(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.Balance, error)
	IsListed(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (bool, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
