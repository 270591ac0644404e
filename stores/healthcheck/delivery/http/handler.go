package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck healthcheck.UseCase
}

func New(e *echo.Echo, us healthcheck.UseCase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		context.WithFields(log.Fields{
			"err":    err,
			"report": report,
		}).Warn("healthCheck.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, report)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
