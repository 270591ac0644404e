package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/token"
	"github.com/x-xyz/marketcore/middleware"
	"github.com/x-xyz/marketcore/service/invocation"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	registry token.Registry
	treasury marketplace.Treasury
	runner   invocation.Runner
}

func New(e *echo.Echo, registry token.Registry, treasury marketplace.Treasury, runner invocation.Runner, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{registry, treasury, runner}

	g := e.Group("/tokens/:collection/:tokenId", middleware.IsValidAddress("collection"))

	g.GET("", h.get)

	g.POST("/approve", h.approve, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.registry.FindToken(ctx, collection, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("registry.FindToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else if res == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, marketplace.ErrTokenDoesNotExist.Error())
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// approve lets the marketplace move the caller's token when it sells
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	address := c.Get("address").(domain.Address)

	collection := domain.Address(c.Param("collection")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	err := h.runner.Run(ctx, func(c bCtx.Ctx) error {
		return h.registry.Approve(c, collection, address, tokenId, h.treasury.Account())
	})
	if err != nil {
		ctx.WithField("err", err).Error("registry.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
