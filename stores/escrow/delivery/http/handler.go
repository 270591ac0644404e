package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/escrow"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrow escrow.UseCase
}

func New(e *echo.Echo, escrow escrow.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{escrow}

	g := e.Group("/escrow")

	g.POST("/deposit", h.deposit, authMiddleware.Auth())

	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())

	g.GET("/:account", h.get, middleware.IsValidAddress("account"))
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Value domain.Balance `json:"value"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if balance, err := h.escrow.Deposit(ctx, marketplace.NewCall(address).WithValue(p.Value)); err != nil {
		ctx.WithField("err", err).Error("escrow.Deposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, balance)
	}
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Amount domain.Balance `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.escrow.Withdraw(ctx, marketplace.NewCall(address), p.Amount); err != nil {
		ctx.WithField("err", err).Error("escrow.Withdraw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account := domain.Address(c.Param("account")).ToLower()

	if balance, err := h.escrow.GetDeposit(ctx, account); err != nil {
		ctx.WithField("err", err).Error("escrow.GetDeposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, balance)
	}
}
