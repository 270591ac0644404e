package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/fee"
	"github.com/x-xyz/marketcore/domain/marketplace"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	fee fee.UseCase
}

func New(e *echo.Echo, fee fee.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{fee}

	g := e.Group("/fees")

	g.GET("", h.get)

	g.PUT("", h.setFee, authMiddleware.Auth())

	g.GET("/recipient", h.getRecipient)

	g.PUT("/recipient", h.setRecipient, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if cfg, err := h.fee.GetConfig(ctx); err != nil {
		ctx.WithField("err", err).Error("fee.GetConfig failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cfg)
	}
}

func (h *handler) setFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Fee uint16 `json:"fee"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.fee.SetMarketplaceFee(ctx, marketplace.NewCall(address), p.Fee); err != nil {
		ctx.WithField("err", err).Error("fee.SetMarketplaceFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) getRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if recipient, err := h.fee.GetFeeRecipient(ctx); err != nil {
		ctx.WithField("err", err).Error("fee.GetFeeRecipient failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, recipient)
	}
}

func (h *handler) setRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Recipient domain.Address `json:"recipient" validate:"required,address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.fee.SetFeeRecipient(ctx, marketplace.NewCall(address), p.Recipient); err != nil {
		ctx.WithField("err", err).Error("fee.SetFeeRecipient failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
