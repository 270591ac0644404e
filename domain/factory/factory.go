package factory

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// ContractType names a kind of nft contract the factory can instantiate
type ContractType string

type ContractHash struct {
	ContractType ContractType `json:"contractType" bson:"contractType"`
	Hash         string       `json:"hash" bson:"hash"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	FindOne(c ctx.Ctx, contractType ContractType) (*ContractHash, error)
	Upsert(c ctx.Ctx, value ContractHash) error
}

type UseCase interface {
	SetNftContractHash(c ctx.Ctx, call marketplace.Call, contractType ContractType, hash common.Hash) error
	// NftContractHash fails with ErrNftContractHashNotSet for unknown types
	NftContractHash(c ctx.Ctx, contractType ContractType) (common.Hash, error)
}
