package http

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/factory"
	"github.com/x-xyz/marketcore/domain/marketplace"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

type handler struct {
	factory factory.UseCase
}

func New(e *echo.Echo, factory factory.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{factory}

	g := e.Group("/factory")

	g.GET("/:contractType", h.get)

	g.PUT("/:contractType", h.set, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	contractType := factory.ContractType(c.Param("contractType"))

	if hash, err := h.factory.NftContractHash(ctx, contractType); err != nil {
		ctx.WithField("err", err).Error("factory.NftContractHash failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, hash.Hex())
	}
}

func (h *handler) set(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Hash string `json:"hash" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	raw, err := hexutil.Decode(p.Hash)
	if err != nil || len(raw) != 32 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid hash")
	}

	contractType := factory.ContractType(c.Param("contractType"))

	if err := h.factory.SetNftContractHash(ctx, marketplace.NewCall(address), contractType, common.BytesToHash(raw)); err != nil {
		ctx.WithField("err", err).Error("factory.SetNftContractHash failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
