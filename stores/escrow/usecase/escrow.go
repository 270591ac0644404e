package usecase

import (
	"errors"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/service/invocation"
)

type EscrowUseCaseCfg struct {
	Repo     escrow.Repo
	Treasury marketplace.Treasury
	Runner   invocation.Runner
}

type impl struct {
	repo     escrow.Repo
	treasury marketplace.Treasury
	runner   invocation.Runner
}

func New(cfg *EscrowUseCaseCfg) escrow.UseCase {
	return &impl{
		repo:     cfg.Repo,
		treasury: cfg.Treasury,
		runner:   cfg.Runner,
	}
}

func (im *impl) GetDeposit(c ctx.Ctx, account domain.Address) (domain.Balance, error) {
	res, err := im.repo.FindOne(c, account)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Balance{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("repo.FindOne failed")
		return domain.Balance{}, err
	}
	return res.Balance, nil
}

func (im *impl) save(c ctx.Ctx, account domain.Address, balance domain.Balance) error {
	value := escrow.Deposit{
		Account:   account.ToLower(),
		Balance:   balance,
		UpdatedAt: time.Now(),
	}
	if err := im.repo.Upsert(c, value); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Deposit(c ctx.Ctx, call marketplace.Call) (domain.Balance, error) {
	var res domain.Balance
	err := im.runner.Run(c, func(c ctx.Ctx) error {
		current, err := im.GetDeposit(c, call.Caller)
		if err != nil {
			return err
		}
		updated, err := current.Add(call.Value)
		if err != nil {
			return err
		}

		if err := im.treasury.Receive(c, call.Caller, call.Value); err != nil {
			c.WithField("err", err).Error("treasury.Receive failed")
			return xerrors.Errorf("%w: %v", marketplace.ErrTransferToMarketplaceFailed, err)
		}
		invocation.OnRollback(c, func(c ctx.Ctx) error {
			return im.treasury.Pay(c, call.Caller, call.Value)
		})

		if err := im.save(c, call.Caller, updated); err != nil {
			return err
		}

		res = updated
		invocation.Emit(c, marketplace.BalanceMoved(marketplace.EventDeposited, call.Caller, call.Value))
		return nil
	})
	if err != nil {
		return domain.Balance{}, err
	}
	return res, nil
}

func (im *impl) Withdraw(c ctx.Ctx, call marketplace.Call, amount domain.Balance) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		current, err := im.GetDeposit(c, call.Caller)
		if err != nil {
			return err
		}
		rest, err := current.Sub(amount)
		if errors.Is(err, domain.ErrArithmeticUnderflow) {
			return marketplace.ErrBalanceInsufficient
		} else if err != nil {
			return err
		}

		// debit before paying out
		if err := im.save(c, call.Caller, rest); err != nil {
			return err
		}

		if err := im.treasury.Pay(c, call.Caller, amount); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"amount": amount,
			}).Error("treasury.Pay failed")
			if err := im.save(c, call.Caller, current); err != nil {
				return err
			}
			return xerrors.Errorf("%w: %v", marketplace.ErrTransferToOwnerFailed, err)
		}

		invocation.Emit(c, marketplace.BalanceMoved(marketplace.EventWithdrawn, call.Caller, amount))
		return nil
	})
}

func (im *impl) Debit(c ctx.Ctx, account domain.Address, amount domain.Balance) error {
	return im.runner.Run(c, func(c ctx.Ctx) error {
		current, err := im.GetDeposit(c, account)
		if err != nil {
			return err
		}
		rest, err := current.Sub(amount)
		if errors.Is(err, domain.ErrArithmeticUnderflow) {
			return marketplace.ErrBalanceInsufficient
		} else if err != nil {
			return err
		}

		if err := im.save(c, account, rest); err != nil {
			return err
		}
		// settlement may still fail after the debit
		invocation.OnRollback(c, func(c ctx.Ctx) error {
			return im.save(c, account, current)
		})
		return nil
	})
}
