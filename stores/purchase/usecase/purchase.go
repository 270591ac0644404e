package usecase

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/offer"
	"github.com/x-xyz/marketcore/domain/purchase"
	"github.com/x-xyz/marketcore/service/invocation"
)

type PurchaseUseCaseCfg struct {
	ListingRepo  listing.Repo
	CollectionUC collection.UseCase
	FeeUC        fee.UseCase
	OfferUC      offer.UseCase
	EscrowUC     escrow.UseCase
	Registry     marketplace.TokenRegistry
	Treasury     marketplace.Treasury
	Runner       invocation.Runner
}

type impl struct {
	listings   listing.Repo
	collection collection.UseCase
	fee        fee.UseCase
	offer      offer.UseCase
	escrow     escrow.UseCase
	registry   marketplace.TokenRegistry
	treasury   marketplace.Treasury
	runner     invocation.Runner

	guard invocation.Guard
}

func New(cfg *PurchaseUseCaseCfg) purchase.UseCase {
	return &impl{
		listings:   cfg.ListingRepo,
		collection: cfg.CollectionUC,
		fee:        cfg.FeeUC,
		offer:      cfg.OfferUC,
		escrow:     cfg.EscrowUC,
		registry:   cfg.Registry,
		treasury:   cfg.Treasury,
		runner:     cfg.Runner,
	}
}

// settlement is a sale ready to be executed
type settlement struct {
	collection *collection.RegisteredCollection
	tokenId    domain.TokenId
	seller     domain.Address
	buyer      domain.Address
	price      domain.Balance
	// listing is dropped on settlement, nil when the token is not listed
	listing *listing.Listing
	// approved is set once the treasury allowance was checked by the caller
	approved bool

	// resolved by prepare
	split     fee.Split
	recipient domain.Address
}

// guarded runs fn as one invocation holding the trade guard. Top level calls
// wait for each other in the runner, so a held guard means re-entry.
func (im *impl) guarded(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		release, err := im.guard.Enter()
		if err != nil {
			c.Warn("trade re-entered")
			return err
		}
		defer release()
		return fn(c)
	})
}

func (im *impl) registered(c ctx.Ctx, address domain.Address) (*collection.RegisteredCollection, error) {
	res, err := im.collection.GetRegisteredCollection(c, address)
	if err != nil {
		c.WithField("err", err).Error("collection.GetRegisteredCollection failed")
		return nil, err
	} else if res == nil {
		return nil, marketplace.ErrNotRegisteredContract
	}
	return res, nil
}

func (im *impl) ownerOf(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	owner, err := im.registry.OwnerOf(c, collection, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("registry.OwnerOf failed")
		return "", err
	} else if owner == nil {
		return "", marketplace.ErrTokenDoesNotExist
	}
	return *owner, nil
}

func (im *impl) findListing(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) (*listing.Listing, error) {
	res, err := im.listings.FindOne(c, listing.Id{Collection: collection, TokenId: tokenId})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, marketplace.ErrItemNotListedForSale
	} else if err != nil {
		c.WithField("err", err).Error("listings.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Buy(c ctx.Ctx, call marketplace.Call, collection domain.Address, tokenId domain.TokenId) error {
	collection = collection.ToLower()

	return im.guarded(c, func(c ctx.Ctx) error {
		l, err := im.findListing(c, collection, tokenId)
		if err != nil {
			return err
		}

		owner, err := im.ownerOf(c, collection, tokenId)
		if err != nil {
			return err
		}
		if owner.Equals(call.Caller) {
			return marketplace.ErrAlreadyOwner
		}

		if call.Value.Cmp(l.Price) < 0 {
			return marketplace.ErrBadBuyValue
		}

		registered, err := im.registered(c, collection)
		if err != nil {
			return err
		}

		// the whole attached value is split, overpayment included
		s := &settlement{
			collection: registered,
			tokenId:    tokenId,
			seller:     owner,
			buyer:      call.Caller,
			price:      call.Value,
			listing:    l,
		}
		if err := im.prepare(c, s); err != nil {
			return err
		}

		if err := im.treasury.Receive(c, call.Caller, call.Value); err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"value": call.Value,
			}).Error("treasury.Receive failed")
			return xerrors.Errorf("%w: %v", marketplace.ErrTransferToMarketplaceFailed, err)
		}
		invocation.OnRollback(c, func(c ctx.Ctx) error {
			return im.treasury.Pay(c, call.Caller, call.Value)
		})

		if err := im.settle(c, s); err != nil {
			return err
		}

		invocation.Emit(c, marketplace.TokenBought(collection, tokenId, call.Caller, owner, call.Value))
		return nil
	})
}

func (im *impl) AcceptOffer(c ctx.Ctx, call marketplace.Call, offerId uint64, tokenId domain.TokenId) error {
	return im.guarded(c, func(c ctx.Ctx) error {
		o, err := im.offer.GetOffer(c, offerId)
		if err != nil {
			return err
		}
		if !o.Covers(tokenId) {
			return marketplace.ErrOfferTokenMismatch
		}

		registered, err := im.registered(c, o.Collection)
		if err != nil {
			return err
		}

		owner, err := im.ownerOf(c, o.Collection, tokenId)
		if err != nil {
			return err
		}
		if !owner.Equals(call.Caller) {
			return marketplace.ErrNotOwner
		}
		if owner.Equals(o.Bidder) {
			return marketplace.ErrAlreadyOwner
		}

		if ok, err := im.approved(c, o.Collection, owner, tokenId); err != nil {
			return err
		} else if !ok {
			return marketplace.ErrTokenNotApproved
		}

		l, err := im.findListing(c, o.Collection, tokenId)
		if errors.Is(err, marketplace.ErrItemNotListedForSale) {
			l = nil
		} else if err != nil {
			return err
		}

		return im.settleOffer(c, o, &settlement{
			collection: registered,
			tokenId:    tokenId,
			seller:     owner,
			buyer:      o.Bidder,
			price:      o.PricePerItem,
			listing:    l,
			approved:   true,
		})
	})
}

func (im *impl) FulfillOffer(c ctx.Ctx, call marketplace.Call, offerId uint64, tokenId domain.TokenId) error {
	return im.guarded(c, func(c ctx.Ctx) error {
		o, err := im.offer.GetOffer(c, offerId)
		if err != nil {
			return err
		}
		if !o.Bidder.Equals(call.Caller) {
			return marketplace.ErrNotOwner
		}
		if !o.Covers(tokenId) {
			return marketplace.ErrOfferTokenMismatch
		}

		l, err := im.findListing(c, o.Collection, tokenId)
		if err != nil {
			return err
		}
		if l.Price.Cmp(o.PricePerItem) > 0 {
			return marketplace.ErrBadBuyValue
		}

		registered, err := im.registered(c, o.Collection)
		if err != nil {
			return err
		}

		owner, err := im.ownerOf(c, o.Collection, tokenId)
		if err != nil {
			return err
		}
		if !owner.Equals(l.Seller) {
			return marketplace.ErrNotOwner
		}
		if owner.Equals(o.Bidder) {
			return marketplace.ErrAlreadyOwner
		}

		return im.settleOffer(c, o, &settlement{
			collection: registered,
			tokenId:    tokenId,
			seller:     owner,
			buyer:      o.Bidder,
			price:      l.Price,
			listing:    l,
		})
	})
}

// settleOffer pays s out of the bidder's escrow and consumes one unit of o
func (im *impl) settleOffer(c ctx.Ctx, o *offer.Offer, s *settlement) error {
	if err := im.prepare(c, s); err != nil {
		return err
	}

	if err := im.escrow.Debit(c, o.Bidder, s.price); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": o.OfferId,
		}).Error("escrow.Debit failed")
		return err
	}

	if err := im.settle(c, s); err != nil {
		return err
	}

	if err := im.offer.Fill(c, *o); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": o.OfferId,
		}).Error("offer.Fill failed")
		return err
	}

	collection := s.collection.Address
	invocation.Emit(c, marketplace.OfferAccepted(o.OfferId, collection, s.tokenId, s.buyer, s.seller, s.price))
	invocation.Emit(c, marketplace.TokenBought(collection, s.tokenId, s.buyer, s.seller, s.price))
	return nil
}

func (im *impl) approved(c ctx.Ctx, collection, owner domain.Address, tokenId domain.TokenId) (bool, error) {
	ok, err := im.registry.Allowance(c, collection, owner, im.treasury.Account(), tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("registry.Allowance failed")
		return false, err
	}
	return ok, nil
}

// prepare resolves everything settle needs that can fail, so that no value
// or token moves for a sale that cannot complete
func (im *impl) prepare(c ctx.Ctx, s *settlement) error {
	split, err := im.fee.Quote(c, s.price, s.collection.Royalty)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"price": s.price,
		}).Error("fee.Quote failed")
		return err
	}
	s.split = split

	recipient, err := im.fee.GetFeeRecipient(c)
	if err != nil {
		c.WithField("err", err).Error("fee.GetFeeRecipient failed")
		return xerrors.Errorf("%w: %v", marketplace.ErrTransferToMarketplaceFailed, err)
	}
	s.recipient = recipient

	if !s.approved {
		if ok, err := im.approved(c, s.collection.Address, s.seller, s.tokenId); err != nil {
			return xerrors.Errorf("%w: %v", marketplace.ErrUnableToTransferToken, err)
		} else if !ok {
			return xerrors.Errorf("%w: %v", marketplace.ErrUnableToTransferToken, marketplace.ErrTokenNotApproved)
		}
		s.approved = true
	}
	return nil
}

// settle moves the token to the buyer, drops its listing and pays out the
// price the marketplace already holds. Every step registers its reversal.
func (im *impl) settle(c ctx.Ctx, s *settlement) error {
	collection := s.collection.Address

	if err := im.registry.Transfer(c, collection, im.treasury.Account(), s.buyer, s.tokenId); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    s.tokenId,
		}).Error("registry.Transfer failed")
		return xerrors.Errorf("%w: %v", marketplace.ErrUnableToTransferToken, err)
	}
	// the buyer owns the token now and may move it back
	invocation.OnRollback(c, func(c ctx.Ctx) error {
		return im.registry.Transfer(c, collection, s.buyer, s.seller, s.tokenId)
	})

	if s.listing != nil {
		if err := im.listings.Remove(c, s.listing.ToId()); err != nil && !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("listings.Remove failed")
			return err
		}
		removed := *s.listing
		invocation.OnRollback(c, func(c ctx.Ctx) error {
			return im.listings.Upsert(c, removed)
		})
	}

	if err := im.pay(c, s.seller, s.split.SellerAmount); err != nil {
		return xerrors.Errorf("%w: %v", marketplace.ErrTransferToOwnerFailed, err)
	}
	if err := im.pay(c, s.recipient, s.split.MarketplaceFee); err != nil {
		return xerrors.Errorf("%w: %v", marketplace.ErrTransferToMarketplaceFailed, err)
	}
	if err := im.pay(c, s.collection.RoyaltyReceiver, s.split.AuthorRoyalty); err != nil {
		return xerrors.Errorf("%w: %v", marketplace.ErrTransferToAuthorFailed, err)
	}
	return nil
}

// pay sends amount out of the marketplace account, a failed invocation takes it back
func (im *impl) pay(c ctx.Ctx, to domain.Address, amount domain.Balance) error {
	if err := im.treasury.Pay(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("treasury.Pay failed")
		return err
	}
	invocation.OnRollback(c, func(c ctx.Ctx) error {
		return im.treasury.Receive(c, to, amount)
	})
	return nil
}
