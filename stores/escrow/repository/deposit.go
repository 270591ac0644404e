package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/service/query"
)

type depositImpl struct {
	q query.Mongo
}

func NewDeposit(q query.Mongo) escrow.Repo {
	return &depositImpl{q}
}

func selector(account domain.Address) bson.M {
	return bson.M{"account": account.ToLower()}
}

func (im *depositImpl) FindOne(c ctx.Ctx, account domain.Address) (*escrow.Deposit, error) {
	res := &escrow.Deposit{}

	if err := im.q.FindOne(c, domain.TableDeposits, selector(account), res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *depositImpl) Upsert(c ctx.Ctx, value escrow.Deposit) error {
	value.Account = value.Account.ToLower()

	if err := im.q.Upsert(c, domain.TableDeposits, selector(value.Account), value); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": value.Account,
		}).Error("q.Upsert failed")
		return err
	}

	return nil
}
