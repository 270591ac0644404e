package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	"github.com/x-xyz/marketcore/service/query"
)

type registeredImpl struct {
	q query.Mongo
}

func NewRegistered(q query.Mongo) collection.Repo {
	return &registeredImpl{q}
}

func selector(address domain.Address) bson.M {
	return bson.M{"address": address.ToLower()}
}

func (im *registeredImpl) FindOne(c ctx.Ctx, address domain.Address) (*collection.RegisteredCollection, error) {
	res := &collection.RegisteredCollection{}

	if err := im.q.FindOne(c, domain.TableRegisteredCollections, selector(address), res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *registeredImpl) Insert(c ctx.Ctx, value collection.RegisteredCollection) error {
	value.Address = value.Address.ToLower()
	value.RoyaltyReceiver = value.RoyaltyReceiver.ToLower()

	if err := im.q.Insert(c, domain.TableRegisteredCollections, value); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *registeredImpl) PatchMetadata(c ctx.Ctx, address domain.Address, metadataUri string) error {
	patch := bson.M{
		"metadataUri": metadataUri,
		"updatedAt":   time.Now(),
	}

	if err := im.q.Patch(c, domain.TableRegisteredCollections, selector(address), patch); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}

	return nil
}
