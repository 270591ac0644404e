package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/purchase"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	purchase purchase.UseCase
}

func New(e *echo.Echo, purchase purchase.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{purchase}

	e.POST("/listings/:collection/:tokenId/buy", h.buy, authMiddleware.Auth(), middleware.IsValidAddress("collection"))

	// a middleware group on /offers/:id would shadow the offer book routes
	e.POST("/offers/:id/accept", h.acceptOffer, authMiddleware.Auth())

	e.POST("/offers/:id/fulfill", h.fulfillOffer, authMiddleware.Auth())
}

func (h *handler) buy(c echo.Context) error {
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

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	if err := h.purchase.Buy(ctx, marketplace.NewCall(address).WithValue(p.Value), collection, tokenId); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"tokenId":    tokenId,
		}).Error("purchase.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

type settleParams struct {
	TokenId domain.TokenId `json:"tokenId" validate:"required"`
}

func (h *handler) bindSettle(c echo.Context) (uint64, domain.TokenId, error) {
	offerId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, "", domain.ErrBadParamInput
	}

	p := &settleParams{}

	if err := c.Bind(p); err != nil {
		return 0, "", err
	}

	if err := c.Validate(p); err != nil {
		return 0, "", err
	}

	return offerId, p.TokenId, nil
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	offerId, tokenId, err := h.bindSettle(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.purchase.AcceptOffer(ctx, marketplace.NewCall(address), offerId, tokenId); err != nil {
		ctx.WithField("err", err).Error("purchase.AcceptOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) fulfillOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	offerId, tokenId, err := h.bindSettle(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.purchase.FulfillOffer(ctx, marketplace.NewCall(address), offerId, tokenId); err != nil {
		ctx.WithField("err", err).Error("purchase.FulfillOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
