package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/offer"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	offer offer.UseCase
}

func New(e *echo.Echo, offer offer.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{offer}

	g := e.Group("/offers")

	g.GET("", h.getAll)

	g.POST("", h.make, authMiddleware.Auth())

	g.GET("/:id", h.get)

	g.GET("/:id/active", h.active)

	g.DELETE("/:id", h.cancel, authMiddleware.Auth())
}

func offerId(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return id, nil
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Bidder     *domain.Address `query:"bidder"`
		Collection *domain.Address `query:"collection"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []offer.FindAllOptionsFunc{}

	if p.Bidder != nil {
		opts = append(opts, offer.WithBidder(*p.Bidder))
	}

	if p.Collection != nil {
		opts = append(opts, offer.WithCollection(*p.Collection))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, offer.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.offer.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("offer.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) make(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := offer.MakeOfferParams{}

	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(p); err != nil {
		ctx.WithField("err", err).Error("validate failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if id, err := h.offer.MakeOffer(ctx, marketplace.NewCall(address), p); err != nil {
		ctx.WithField("err", err).Error("offer.MakeOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, id)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := offerId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.offer.GetOffer(ctx, id); err != nil {
		ctx.WithField("err", err).Error("offer.GetOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) active(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := offerId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if active, err := h.offer.GetOfferActive(ctx, id); err != nil {
		ctx.WithField("err", err).Error("offer.GetOfferActive failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, active)
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	id, err := offerId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.offer.CancelOffer(ctx, marketplace.NewCall(address), id); err != nil {
		ctx.WithField("err", err).Error("offer.CancelOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
