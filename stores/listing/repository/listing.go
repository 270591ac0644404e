package repository

import (
	"errors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/service/query"
)

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.Repo {
	return &listingImpl{q}
}

func normalize(id listing.Id) listing.Id {
	id.Collection = id.Collection.ToLower()
	return id
}

func (im *listingImpl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.q.FindOne(c, domain.TableListings, normalize(id), res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	res := []*listing.Listing{}

	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	sort := "-updatedAt"
	if opts.SortBy != nil {
		sort = *opts.SortBy
		if opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, opts, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) Upsert(c ctx.Ctx, value listing.Listing) error {
	value.Collection = value.Collection.ToLower()
	value.Seller = value.Seller.ToLower()

	if err := im.q.Upsert(c, domain.TableListings, value.ToId(), value); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"value": value,
		}).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *listingImpl) Remove(c ctx.Ctx, id listing.Id) error {
	if err := im.q.Remove(c, domain.TableListings, normalize(id)); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}

	return nil
}
