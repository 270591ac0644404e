package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listing}

	gs := e.Group("/listings")

	gs.GET("", h.getAll)

	g := gs.Group("/:collection/:tokenId", middleware.IsValidAddress("collection"))

	g.GET("", h.getPrice)

	g.POST("", h.list, authMiddleware.Auth())

	g.DELETE("", h.unlist, authMiddleware.Auth())
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Collection *domain.Address `query:"collection"`
		Seller     *domain.Address `query:"seller"`
		Offset     int32           `query:"offset"`
		Limit      int32           `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.Collection != nil {
		opts = append(opts, listing.WithCollection(*p.Collection))
	}

	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.listing.FindAll(ctx, opts...); err != nil {
		ctx.WithField("err", err).Error("listing.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	price, err := h.listing.GetPrice(ctx, collection, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetPrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else if price == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, marketplace.ErrItemNotListedForSale.Error())
	}

	return delivery.MakeJsonResp(c, http.StatusOK, price)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Price domain.Balance `json:"price"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	if err := h.listing.List(ctx, marketplace.NewCall(address), collection, tokenId, p.Price); err != nil {
		ctx.WithField("err", err).Error("listing.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) unlist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	if err := h.listing.Unlist(ctx, marketplace.NewCall(address), collection, tokenId); err != nil {
		ctx.WithField("err", err).Error("listing.Unlist failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
