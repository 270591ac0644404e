package repository

import (
	"errors"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/token"
	"github.com/x-xyz/marketcore/service/invocation"
	"github.com/x-xyz/marketcore/service/query"
)

type contractId struct {
	Address domain.Address `bson:"address"`
}

type approvalId struct {
	Collection domain.Address `bson:"collection"`
	Owner      domain.Address `bson:"owner"`
	Operator   domain.Address `bson:"operator"`
}

type registryImpl struct {
	q query.Mongo
}

// NewRegistry keeps token ownership and approvals in mongo so that token
// moves commit with the marketplace state
func NewRegistry(q query.Mongo) token.Registry {
	return &registryImpl{q}
}

func tokenId(collection domain.Address, id domain.TokenId) token.TokenId {
	return token.TokenId{Collection: collection.ToLower(), TokenId: id}
}

func (im *registryImpl) Deploy(c ctx.Ctx, collection, owner domain.Address) error {
	value := token.Contract{
		Address:   collection.ToLower(),
		Owner:     owner.ToLower(),
		CreatedAt: time.Now(),
	}
	if err := im.q.Insert(c, domain.TableTokenContracts, value); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *registryImpl) findContract(c ctx.Ctx, collection domain.Address) (*token.Contract, error) {
	res := &token.Contract{}
	if err := im.q.FindOne(c, domain.TableTokenContracts, contractId{collection.ToLower()}, res); errors.Is(err, query.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *registryImpl) CollectionOwner(c ctx.Ctx, collection domain.Address) (*domain.Address, error) {
	contract, err := im.findContract(c, collection)
	if err != nil || contract == nil {
		return nil, err
	}
	return &contract.Owner, nil
}

func (im *registryImpl) Mint(c ctx.Ctx, collection domain.Address, id domain.TokenId, owner domain.Address) error {
	if contract, err := im.findContract(c, collection); err != nil {
		return err
	} else if contract == nil {
		return xerrors.Errorf("%w: %s", token.ErrContractNotFound, collection)
	}

	value := token.Token{
		Collection: collection.ToLower(),
		TokenId:    id,
		Owner:      owner.ToLower(),
		UpdatedAt:  time.Now(),
	}
	if err := im.q.Insert(c, domain.TableTokens, value); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    id,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *registryImpl) FindToken(c ctx.Ctx, collection domain.Address, id domain.TokenId) (*token.Token, error) {
	res := &token.Token{}
	if err := im.q.FindOne(c, domain.TableTokens, tokenId(collection, id), res); errors.Is(err, query.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *registryImpl) OwnerOf(c ctx.Ctx, collection domain.Address, id domain.TokenId) (*domain.Address, error) {
	t, err := im.FindToken(c, collection, id)
	if err != nil || t == nil {
		return nil, err
	}
	return &t.Owner, nil
}

func (im *registryImpl) isApprovedForAll(c ctx.Ctx, collection, owner, operator domain.Address) (bool, error) {
	res := &token.OperatorApproval{}
	sel := approvalId{collection.ToLower(), owner.ToLower(), operator.ToLower()}
	if err := im.q.FindOne(c, domain.TableOperatorApprovals, sel, res); errors.Is(err, query.ErrNotFound) {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"owner":      owner,
		}).Error("q.FindOne failed")
		return false, err
	}
	return res.Approved, nil
}

func (im *registryImpl) Allowance(c ctx.Ctx, collection domain.Address, owner, operator domain.Address, id domain.TokenId) (bool, error) {
	t, err := im.FindToken(c, collection, id)
	if err != nil {
		return false, err
	} else if t == nil || !t.Owner.Equals(owner) {
		return false, nil
	}
	if t.Approved != nil && t.Approved.Equals(operator) {
		return true, nil
	}
	return im.isApprovedForAll(c, collection, owner, operator)
}

func (im *registryImpl) Transfer(c ctx.Ctx, collection domain.Address, operator, to domain.Address, id domain.TokenId) error {
	t, err := im.FindToken(c, collection, id)
	if err != nil {
		return err
	} else if t == nil {
		return xerrors.Errorf("%w: %s #%s", token.ErrTokenNotFound, collection, id)
	}

	if !t.Owner.Equals(operator) {
		ok, err := im.Allowance(c, collection, t.Owner, operator, id)
		if err != nil {
			return err
		} else if !ok {
			return xerrors.Errorf("%w: %s on %s #%s", token.ErrNotApproved, operator, collection, id)
		}
	}

	prev := *t
	// approvals do not survive a transfer
	t.Owner = to.ToLower()
	t.Approved = nil
	t.UpdatedAt = time.Now()
	if err := im.q.Upsert(c, domain.TableTokens, tokenId(collection, id), t); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    id,
		}).Error("q.Upsert failed")
		return err
	}
	// a failed invocation puts owner and approval back as they were
	invocation.OnRollback(c, func(c ctx.Ctx) error {
		return im.q.Upsert(c, domain.TableTokens, tokenId(collection, id), &prev)
	})
	return nil
}

func (im *registryImpl) Approve(c ctx.Ctx, collection domain.Address, owner domain.Address, id domain.TokenId, operator domain.Address) error {
	t, err := im.FindToken(c, collection, id)
	if err != nil {
		return err
	} else if t == nil {
		return xerrors.Errorf("%w: %s #%s", token.ErrTokenNotFound, collection, id)
	} else if !t.Owner.Equals(owner) {
		return xerrors.Errorf("%w: %s", token.ErrNotTokenOwner, owner)
	}

	t.Approved = operator.ToLowerPtr()
	t.UpdatedAt = time.Now()
	if err := im.q.Upsert(c, domain.TableTokens, tokenId(collection, id), t); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *registryImpl) SetApprovalForAll(c ctx.Ctx, collection domain.Address, owner, operator domain.Address, approved bool) error {
	sel := approvalId{collection.ToLower(), owner.ToLower(), operator.ToLower()}
	value := token.OperatorApproval{
		Collection: sel.Collection,
		Owner:      sel.Owner,
		Operator:   sel.Operator,
		Approved:   approved,
		UpdatedAt:  time.Now(),
	}
	if err := im.q.Upsert(c, domain.TableOperatorApprovals, sel, value); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"owner":      owner,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
