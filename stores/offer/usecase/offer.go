package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/offer"
	"github.com/x-xyz/marketcore/service/invocation"
)

type OfferUseCaseCfg struct {
	Repo     offer.Repo
	EscrowUC escrow.UseCase
	Runner   invocation.Runner
}

type impl struct {
	repo   offer.Repo
	escrow escrow.UseCase
	runner invocation.Runner
}

func New(cfg *OfferUseCaseCfg) offer.UseCase {
	return &impl{
		repo:   cfg.Repo,
		escrow: cfg.EscrowUC,
		runner: cfg.Runner,
	}
}

// covered reports whether the escrow of bidder can pay total
func (im *impl) covered(c ctx.Ctx, bidder domain.Address, total domain.Balance) (bool, error) {
	balance, err := im.escrow.GetDeposit(c, bidder)
	if err != nil {
		c.WithField("err", err).Error("escrow.GetDeposit failed")
		return false, err
	}
	return balance.Cmp(total) >= 0, nil
}

func (im *impl) MakeOffer(c ctx.Ctx, call marketplace.Call, params offer.MakeOfferParams) (uint64, error) {
	if params.Quantity == 0 {
		return 0, marketplace.ErrInvalidQuantity
	}

	value := offer.Offer{
		Bidder:       call.Caller,
		Collection:   params.Collection.ToLower(),
		TokenId:      params.TokenId,
		Quantity:     params.Quantity,
		PricePerItem: params.PricePerItem,
		Extra:        params.Extra,
	}
	total, err := value.Total()
	if err != nil {
		return 0, err
	}

	err = im.runner.Run(c, func(c ctx.Ctx) error {
		if ok, err := im.covered(c, call.Caller, total); err != nil {
			return err
		} else if !ok {
			return marketplace.ErrBalanceInsufficient
		}

		offerId, err := im.repo.NextId(c)
		if err != nil {
			c.WithField("err", err).Error("repo.NextId failed")
			return err
		}
		value.OfferId = offerId
		value.CreatedAt = time.Now()

		if err := im.repo.Insert(c, value); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"offerId": offerId,
			}).Error("repo.Insert failed")
			return err
		}

		invocation.Emit(c, marketplace.OfferMade(offerId, value.Bidder, value.Collection, value.TokenId, value.Quantity, value.PricePerItem, value.Extra))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value.OfferId, nil
}

func (im *impl) CancelOffer(c ctx.Ctx, call marketplace.Call, offerId uint64) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		o, err := im.GetOffer(c, offerId)
		if err != nil {
			return err
		}
		if !o.Bidder.Equals(call.Caller) {
			return marketplace.ErrNotOwner
		}

		if err := im.repo.Remove(c, offerId); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"offerId": offerId,
			}).Error("repo.Remove failed")
			return err
		}

		invocation.Emit(c, marketplace.OfferCancelled(offerId, o.Bidder))
		return nil
	})
}

func (im *impl) GetOffer(c ctx.Ctx, offerId uint64) (*offer.Offer, error) {
	res, err := im.repo.FindOne(c, offerId)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, marketplace.ErrOfferNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": offerId,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetOfferActive(c ctx.Ctx, offerId uint64) (bool, error) {
	o, err := im.GetOffer(c, offerId)
	if errors.Is(err, marketplace.ErrOfferNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	total, err := o.Total()
	if err != nil {
		return false, err
	}
	return im.covered(c, o.Bidder, total)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...offer.FindAllOptionsFunc) ([]*offer.Offer, error) {
	return im.repo.FindAll(c, opts...)
}

func (im *impl) Fill(c ctx.Ctx, o offer.Offer) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		if o.Quantity <= 1 {
			if err := im.repo.Remove(c, o.OfferId); err != nil {
				c.WithFields(log.Fields{
					"err":     err,
					"offerId": o.OfferId,
				}).Error("repo.Remove failed")
				return err
			}
			invocation.OnRollback(c, func(c ctx.Ctx) error {
				return im.repo.Insert(c, o)
			})
			return nil
		}

		if err := im.repo.PatchQuantity(c, o.OfferId, o.Quantity-1); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"offerId": o.OfferId,
			}).Error("repo.PatchQuantity failed")
			return err
		}
		invocation.OnRollback(c, func(c ctx.Ctx) error {
			return im.repo.PatchQuantity(c, o.OfferId, o.Quantity)
		})
		return nil
	})
}
