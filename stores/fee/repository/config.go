package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/service/query"
)

// configKey is the _id of the singleton config document
const configKey = "marketplace"

type configDoc struct {
	Id         string `bson:"_id"`
	fee.Config `bson:",inline"`
}

type configImpl struct {
	q query.Mongo
}

func NewConfig(q query.Mongo) fee.Repo {
	return &configImpl{q}
}

func (im *configImpl) Get(c ctx.Ctx) (*fee.Config, error) {
	doc := &configDoc{}
	if err := im.q.FindOne(c, domain.TableMarketplaceConfig, bson.M{"_id": configKey}, doc); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &doc.Config, nil
}

func (im *configImpl) Insert(c ctx.Ctx, value fee.Config) error {
	if err := im.q.Insert(c, domain.TableMarketplaceConfig, configDoc{configKey, value}); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *configImpl) Patch(c ctx.Ctx, patch fee.ConfigPatch) error {
	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableMarketplaceConfig, bson.M{"_id": configKey}, updater); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}
