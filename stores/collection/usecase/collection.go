package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/cache"
	"github.com/x-xyz/marketcore/service/invocation"
)

type CollectionUseCaseCfg struct {
	Repo          collection.Repo
	FeeUC         fee.UseCase
	AccessControl marketplace.AccessControl
	Runner        invocation.Runner
	// Cache is optional, reads go to the repo when it is nil
	Cache cache.Service
	// Owner administers the marketplace
	Owner domain.Address
}

type impl struct {
	repo          collection.Repo
	fee           fee.UseCase
	accessControl marketplace.AccessControl
	runner        invocation.Runner
	cache         cache.Service
	owner         domain.Address
}

func New(cfg *CollectionUseCaseCfg) collection.UseCase {
	return &impl{
		repo:          cfg.Repo,
		fee:           cfg.FeeUC,
		accessControl: cfg.AccessControl,
		runner:        cfg.Runner,
		cache:         cfg.Cache,
		owner:         cfg.Owner.ToLower(),
	}
}

// canAdminister is true for the marketplace owner and the owner of the collection contract
func (im *impl) canAdminister(c ctx.Ctx, caller, address domain.Address) (bool, error) {
	if caller.Equals(im.owner) {
		return true, nil
	}
	owner, err := im.accessControl.CollectionOwner(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": address,
		}).Error("accessControl.CollectionOwner failed")
		return false, err
	}
	return owner != nil && owner.Equals(caller), nil
}

func (im *impl) Register(c ctx.Ctx, call marketplace.Call, params collection.RegisterParams) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if err := im.fee.ValidateFee(c, params.Royalty); err != nil {
			return err
		}

		// a registered collection reports the conflict to any caller
		if _, err := im.repo.FindOne(c, params.Address); err == nil {
			return marketplace.ErrContractAlreadyRegistered
		} else if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		}

		if ok, err := im.canAdminister(c, call.Caller, params.Address); err != nil {
			return err
		} else if !ok {
			return marketplace.ErrNotOwner
		}

		now := time.Now()
		value := collection.RegisteredCollection{
			Address:         params.Address.ToLower(),
			RoyaltyReceiver: params.RoyaltyReceiver.ToLower(),
			Royalty:         params.Royalty,
			MetadataUri:     params.MetadataUri,
			RegisteredBy:    call.Caller,
			RegisteredAt:    now,
			UpdatedAt:       now,
		}
		if err := im.repo.Insert(c, value); errors.Is(err, domain.ErrConflict) {
			return marketplace.ErrContractAlreadyRegistered
		} else if err != nil {
			c.WithField("err", err).Error("repo.Insert failed")
			return err
		}

		im.invalidate(c, value.Address)
		invocation.Emit(c, marketplace.CollectionRegistered(value.Address, call.Caller))
		return nil
	})
}

func (im *impl) SetContractMetadata(c ctx.Ctx, call marketplace.Call, address domain.Address, metadataUri string) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if _, err := im.repo.FindOne(c, address); errors.Is(err, domain.ErrNotFound) {
			return marketplace.ErrNotRegisteredContract
		} else if err != nil {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		}

		if ok, err := im.canAdminister(c, call.Caller, address); err != nil {
			return err
		} else if !ok {
			return marketplace.ErrNotOwner
		}

		if err := im.repo.PatchMetadata(c, address, metadataUri); err != nil {
			c.WithField("err", err).Error("repo.PatchMetadata failed")
			return err
		}

		im.invalidate(c, address)
		return nil
	})
}

func (im *impl) invalidate(c ctx.Ctx, address domain.Address) {
	if im.cache == nil {
		return
	}
	del := func(c ctx.Ctx) {
		if err := im.cache.Del(c, address.ToLowerStr()); err != nil {
			c.WithFields(log.Fields{
				"err":        err,
				"collection": address,
			}).Warn("cache.Del failed")
		}
	}
	del(c)
	invocation.AfterCommit(c, del)
}

func (im *impl) GetRegisteredCollection(c ctx.Ctx, address domain.Address) (*collection.RegisteredCollection, error) {
	var (
		res = &collection.RegisteredCollection{}
		err error
	)

	if im.cache == nil {
		res, err = im.repo.FindOne(c, address)
	} else {
		err = im.cache.GetByFunc(c, address.ToLowerStr(), res, func() (interface{}, error) {
			return im.repo.FindOne(c, address)
		})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": address,
		}).Error("GetRegisteredCollection failed")
		return nil, err
	}
	return res, nil
}
