package usecase

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/factory"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/invocation"
)

type FactoryUseCaseCfg struct {
	Repo   factory.Repo
	Runner invocation.Runner
	// Owner administers the marketplace
	Owner domain.Address
}

type impl struct {
	repo   factory.Repo
	runner invocation.Runner
	owner  domain.Address
}

func New(cfg *FactoryUseCaseCfg) factory.UseCase {
	return &impl{
		repo:   cfg.Repo,
		runner: cfg.Runner,
		owner:  cfg.Owner.ToLower(),
	}
}

func (im *impl) SetNftContractHash(c ctx.Ctx, call marketplace.Call, contractType factory.ContractType, hash common.Hash) error {
	if !call.Caller.Equals(im.owner) {
		return marketplace.ErrNotOwner
	}

	return im.runner.Run(c, func(c ctx.Ctx) error {
		value := factory.ContractHash{
			ContractType: contractType,
			Hash:         hash.Hex(),
			UpdatedAt:    time.Now(),
		}
		if err := im.repo.Upsert(c, value); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
		return nil
	})
}

func (im *impl) NftContractHash(c ctx.Ctx, contractType factory.ContractType) (common.Hash, error) {
	res, err := im.repo.FindOne(c, contractType)
	if errors.Is(err, domain.ErrNotFound) {
		return common.Hash{}, marketplace.ErrNftContractHashNotSet
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return common.Hash{}, err
	}
	return common.HexToHash(res.Hash), nil
}
