package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/collection"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	collection collection.UseCase
}

func New(e *echo.Echo, collection collection.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{collection}

	gs := e.Group("/collections")

	gs.POST("", h.register, authMiddleware.Auth())

	g := gs.Group("/:address", middleware.IsValidAddress("address"))

	g.GET("", h.get)

	g.PUT("/metadata", h.setMetadata, authMiddleware.Auth())
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &collection.RegisterParams{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := h.collection.Register(ctx, marketplace.NewCall(address), *p); err != nil {
		ctx.WithField("err", err).Error("collection.Register failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()

	res, err := h.collection.GetRegisteredCollection(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("collection.GetRegisteredCollection failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else if res == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, marketplace.ErrNotRegisteredContract.Error())
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) setMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		MetadataUri string `json:"metadataUri"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	address := domain.Address(c.Param("address")).ToLower()

	if err := h.collection.SetContractMetadata(ctx, marketplace.NewCall(caller), address, p.MetadataUri); err != nil {
		ctx.WithField("err", err).Error("collection.SetContractMetadata failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
