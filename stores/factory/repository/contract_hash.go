package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/factory"
	"github.com/x-xyz/marketcore/service/query"
)

type contractHashImpl struct {
	q query.Mongo
}

func NewContractHash(q query.Mongo) factory.Repo {
	return &contractHashImpl{q}
}

func selector(contractType factory.ContractType) bson.M {
	return bson.M{"contractType": contractType}
}

func (im *contractHashImpl) FindOne(c ctx.Ctx, contractType factory.ContractType) (*factory.ContractHash, error) {
	res := &factory.ContractHash{}

	if err := im.q.FindOne(c, domain.TableContractHashes, selector(contractType), res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":          err,
			"contractType": contractType,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *contractHashImpl) Upsert(c ctx.Ctx, value factory.ContractHash) error {
	if err := im.q.Upsert(c, domain.TableContractHashes, selector(value.ContractType), value); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"value": value,
		}).Error("q.Upsert failed")
		return err
	}

	return nil
}
