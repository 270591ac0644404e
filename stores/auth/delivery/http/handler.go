package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/middleware"
)

type authHandler struct {
	auth               domain.AuthUsecase
	signingMsgTemplate string
}

func New(e *echo.Echo, auth domain.AuthUsecase, template string) {
	handler := &authHandler{
		auth:               auth,
		signingMsgTemplate: template,
	}
	g := e.Group("/auth")
	g.GET("/nonce/:address", handler.getNonce, middleware.IsValidAddress("address"))
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

func (h *authHandler) getNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()

	if nonce, err := h.auth.GetNonce(ctx, address); err != nil {
		ctx.WithField("err", err).Error("auth.GetNonce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, nonce)
	}
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" validate:"required,address"`
		Signature string         `json:"signature" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if tkn, err := h.auth.Login(ctx, p.Address, p.Signature); err != nil {
		ctx.WithField("err", err).Warn("auth.Login failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.signingMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
