package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/offer"
	"github.com/x-xyz/marketcore/service/query"
)

const counterKey = "offerId"

type counter struct {
	Id  string `bson:"_id"`
	Seq uint64 `bson:"seq"`
}

type offerImpl struct {
	q query.Mongo
}

func NewOffer(q query.Mongo) offer.Repo {
	return &offerImpl{q}
}

func selector(offerId uint64) bson.M {
	return bson.M{"offerId": offerId}
}

func (im *offerImpl) NextId(c ctx.Ctx) (uint64, error) {
	res := &counter{}

	if err := im.q.IncrementMany(c, domain.TableCounters, bson.M{"_id": counterKey}, bson.M{"seq": 1}, nil, res); err != nil {
		c.WithField("err", err).Error("q.IncrementMany failed")
		return 0, err
	}

	return res.Seq, nil
}

func (im *offerImpl) FindOne(c ctx.Ctx, offerId uint64) (*offer.Offer, error) {
	res := &offer.Offer{}

	if err := im.q.FindOne(c, domain.TableOffers, selector(offerId), res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": offerId,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *offerImpl) FindAll(c ctx.Ctx, optFns ...offer.FindAllOptionsFunc) ([]*offer.Offer, error) {
	res := []*offer.Offer{}

	opts, err := offer.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("offer.GetFindAllOptions failed")
		return nil, err
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	sort := "-offerId"
	if opts.SortBy != nil {
		sort = *opts.SortBy
		if opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	if err := im.q.Search(c, domain.TableOffers, offset, limit, sort, opts, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *offerImpl) Insert(c ctx.Ctx, value offer.Offer) error {
	value.Bidder = value.Bidder.ToLower()
	value.Collection = value.Collection.ToLower()

	if err := im.q.Insert(c, domain.TableOffers, value); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"value": value,
		}).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *offerImpl) PatchQuantity(c ctx.Ctx, offerId uint64, quantity uint64) error {
	if err := im.q.Patch(c, domain.TableOffers, selector(offerId), bson.M{"quantity": quantity}); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"offerId":  offerId,
			"quantity": quantity,
		}).Error("q.Patch failed")
		return err
	}

	return nil
}

func (im *offerImpl) Remove(c ctx.Ctx, offerId uint64) error {
	if err := im.q.Remove(c, domain.TableOffers, selector(offerId)); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"offerId": offerId,
		}).Error("q.Remove failed")
		return err
	}

	return nil
}
