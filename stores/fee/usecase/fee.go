package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/cache"
	"github.com/x-xyz/marketcore/service/invocation"
)

const cacheKey = "marketplace"

type FeeUseCaseCfg struct {
	Repo   fee.Repo
	Runner invocation.Runner
	// Cache is optional, reads go to the repo when it is nil
	Cache cache.Service
	// Owner administers the marketplace
	Owner domain.Address
}

type impl struct {
	repo   fee.Repo
	runner invocation.Runner
	cache  cache.Service
	owner  domain.Address
}

func New(cfg *FeeUseCaseCfg) fee.UseCase {
	return &impl{
		repo:   cfg.Repo,
		runner: cfg.Runner,
		cache:  cfg.Cache,
		owner:  cfg.Owner.ToLower(),
	}
}

func (im *impl) Initialize(c ctx.Ctx, maxFee, initial uint16, recipient *domain.Address) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if existing, err := im.repo.Get(c); err == nil {
			c.WithFields(log.Fields{
				"fee":    existing.Fee,
				"maxFee": existing.MaxFee,
			}).Info("fee config exists")
			return nil
		} else if !xerrors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("repo.Get failed")
			return err
		}

		if err := fee.CheckFee(initial, maxFee); err != nil {
			return err
		}

		if recipient != nil {
			recipient = recipient.ToLowerPtr()
		}
		cfg := fee.Config{
			Fee:          initial,
			MaxFee:       maxFee,
			FeeRecipient: recipient,
			UpdatedAt:    time.Now(),
		}
		if err := im.repo.Insert(c, cfg); xerrors.Is(err, domain.ErrConflict) {
			return nil
		} else if err != nil {
			c.WithField("err", err).Error("repo.Insert failed")
			return err
		}
		im.invalidate(c)
		return nil
	})
}

func (im *impl) SetMarketplaceFee(c ctx.Ctx, call marketplace.Call, value uint16) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if !call.Caller.Equals(im.owner) {
			return marketplace.ErrNotOwner
		}

		cfg, err := im.repo.Get(c)
		if err != nil {
			c.WithField("err", err).Error("repo.Get failed")
			return err
		}
		if err := fee.CheckFee(value, cfg.MaxFee); err != nil {
			return err
		}

		if err := im.repo.Patch(c, fee.ConfigPatch{Fee: &value, UpdatedAt: time.Now()}); err != nil {
			c.WithField("err", err).Error("repo.Patch failed")
			return err
		}
		im.invalidate(c)
		return nil
	})
}

func (im *impl) SetFeeRecipient(c ctx.Ctx, call marketplace.Call, recipient domain.Address) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if !call.Caller.Equals(im.owner) {
			return marketplace.ErrNotOwner
		}

		if err := im.repo.Patch(c, fee.ConfigPatch{FeeRecipient: recipient.ToLowerPtr(), UpdatedAt: time.Now()}); err != nil {
			c.WithField("err", err).Error("repo.Patch failed")
			return err
		}
		im.invalidate(c)
		return nil
	})
}

// invalidate drops the cached config now and again once the write commits
func (im *impl) invalidate(c ctx.Ctx) {
	if im.cache == nil {
		return
	}
	del := func(c ctx.Ctx) {
		if err := im.cache.Del(c, cacheKey); err != nil {
			c.WithField("err", err).Warn("cache.Del failed")
		}
	}
	del(c)
	invocation.AfterCommit(c, del)
}

func (im *impl) GetConfig(c ctx.Ctx) (*fee.Config, error) {
	if im.cache == nil {
		return im.repo.Get(c)
	}

	res := &fee.Config{}
	if err := im.cache.GetByFunc(c, cacheKey, res, func() (interface{}, error) {
		return im.repo.Get(c)
	}); err != nil {
		if xerrors.Is(err, cache.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) GetMarketplaceFee(c ctx.Ctx) (uint16, error) {
	cfg, err := im.GetConfig(c)
	if err != nil {
		return 0, err
	}
	return cfg.Fee, nil
}

func (im *impl) GetMaxFee(c ctx.Ctx) (uint16, error) {
	cfg, err := im.GetConfig(c)
	if err != nil {
		return 0, err
	}
	return cfg.MaxFee, nil
}

// stored reads the config past the cache. Money moves and fee checks use it,
// so a write from another process takes effect at once.
func (im *impl) stored(c ctx.Ctx) (*fee.Config, error) {
	cfg, err := im.repo.Get(c)
	if err != nil && !xerrors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).Error("repo.Get failed")
	}
	return cfg, err
}

func (im *impl) GetFeeRecipient(c ctx.Ctx) (domain.Address, error) {
	cfg, err := im.stored(c)
	if err != nil {
		return "", err
	}
	if cfg.FeeRecipient == nil || cfg.FeeRecipient.IsEmpty() {
		return "", marketplace.ErrFeeRecipientNotSet
	}
	return *cfg.FeeRecipient, nil
}

func (im *impl) ValidateFee(c ctx.Ctx, value uint16) error {
	cfg, err := im.stored(c)
	if err != nil {
		return err
	}
	return fee.CheckFee(value, cfg.MaxFee)
}

func (im *impl) Quote(c ctx.Ctx, value domain.Balance, royaltyBps uint16) (fee.Split, error) {
	cfg, err := im.stored(c)
	if err != nil {
		return fee.Split{}, err
	}
	return fee.ComputeSplit(value, cfg.Fee, royaltyBps)
}
