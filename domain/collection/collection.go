package collection

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// RegisteredCollection holds the royalty terms a collection is traded under
type RegisteredCollection struct {
	Address         domain.Address `json:"address" bson:"address"`
	RoyaltyReceiver domain.Address `json:"royaltyReceiver" bson:"royaltyReceiver"`
	Royalty         uint16         `json:"royalty" bson:"royalty"`
	MetadataUri     string         `json:"metadataUri" bson:"metadataUri"`
	RegisteredBy    domain.Address `json:"registeredBy" bson:"registeredBy"`
	RegisteredAt    time.Time      `json:"registeredAt" bson:"registeredAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type RegisterParams struct {
	Address         domain.Address `json:"address" validate:"required,address"`
	RoyaltyReceiver domain.Address `json:"royaltyReceiver" validate:"required,address"`
	Royalty         uint16         `json:"royalty"`
	MetadataUri     string         `json:"metadataUri"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*RegisteredCollection, error)
	// Insert fails with domain.ErrConflict when the address is taken
	Insert(c ctx.Ctx, value RegisteredCollection) error
	PatchMetadata(c ctx.Ctx, address domain.Address, metadataUri string) error
}

type UseCase interface {
	Register(c ctx.Ctx, call marketplace.Call, params RegisterParams) error
	SetContractMetadata(c ctx.Ctx, call marketplace.Call, address domain.Address, metadataUri string) error
	// GetRegisteredCollection returns nil when the collection is not registered
	GetRegisteredCollection(c ctx.Ctx, address domain.Address) (*RegisteredCollection, error)
}
