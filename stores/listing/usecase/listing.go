package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/invocation"
)

type ListingUseCaseCfg struct {
	Repo         listing.Repo
	CollectionUC collection.UseCase
	Registry     marketplace.TokenRegistry
	// Treasury names the account that needs the transfer allowance
	Treasury marketplace.Treasury
	Runner   invocation.Runner
}

type impl struct {
	repo       listing.Repo
	collection collection.UseCase
	registry   marketplace.TokenRegistry
	treasury   marketplace.Treasury
	runner     invocation.Runner
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:       cfg.Repo,
		collection: cfg.CollectionUC,
		registry:   cfg.Registry,
		treasury:   cfg.Treasury,
		runner:     cfg.Runner,
	}
}

// requireOwner fails unless caller currently owns the token
func (im *impl) requireOwner(c ctx.Ctx, caller, collection domain.Address, tokenId domain.TokenId) error {
	owner, err := im.registry.OwnerOf(c, collection, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("registry.OwnerOf failed")
		return err
	} else if owner == nil {
		return marketplace.ErrTokenDoesNotExist
	} else if !owner.Equals(caller) {
		return marketplace.ErrNotOwner
	}
	return nil
}

func (im *impl) List(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId, price domain.Balance) error {
	collection = collection.ToLower()

	return im.runner.Run(c, func(c ctx.Ctx) error {
		if registered, err := im.collection.GetRegisteredCollection(c, collection); err != nil {
			return err
		} else if registered == nil {
			return marketplace.ErrNotRegisteredContract
		}

		if err := im.requireOwner(c, call.Caller, collection, tokenId); err != nil {
			return err
		}

		if ok, err := im.registry.Allowance(c, collection, call.Caller, im.treasury.Account(), tokenId); err != nil {
			c.WithField("err", err).Error("registry.Allowance failed")
			return err
		} else if !ok {
			return marketplace.ErrTokenNotApproved
		}

		value := listing.Listing{
			Collection: collection,
			TokenId:    tokenId,
			Seller:     call.Caller,
			Price:      price,
			UpdatedAt:  time.Now(),
		}
		if err := im.repo.Upsert(c, value); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}

		invocation.Emit(c, marketplace.TokenListed(collection, tokenId, call.Caller, &price))
		return nil
	})
}

func (im *impl) Unlist(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId) error {
	collection = collection.ToLower()
	id := listing.Id{Collection: collection, TokenId: tokenId}

	return im.runner.Run(c, func(c ctx.Ctx) error {
		if _, err := im.repo.FindOne(c, id); errors.Is(err, domain.ErrNotFound) {
			return marketplace.ErrItemNotListedForSale
		} else if err != nil {
			c.WithField("err", err).Error("repo.FindOne failed")
			return err
		}

		if err := im.requireOwner(c, call.Caller, collection, tokenId); err != nil {
			return err
		}

		if err := im.repo.Remove(c, id); err != nil {
			c.WithField("err", err).Error("repo.Remove failed")
			return err
		}

		invocation.Emit(c, marketplace.TokenListed(collection, tokenId, call.Caller, nil))
		return nil
	})
}

func (im *impl) find(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*listing.Listing, error) {
	res, err := im.repo.FindOne(c, listing.Id{Collection: collection.ToLower(), TokenId: tokenId})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetPrice(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.Balance, error) {
	res, err := im.find(c, collection, tokenId)
	if err != nil || res == nil {
		return nil, err
	}
	return &res.Price, nil
}

func (im *impl) IsListed(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (bool, error) {
	res, err := im.find(c, collection, tokenId)
	if err != nil {
		return false, err
	}
	return res != nil, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, opts...)
}
