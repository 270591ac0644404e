package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/delivery"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext puts a ctx.Ctx bound to the request under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			// cancel the work of clients that went away
			cont = ctx.WithContext(cont, c.Request().Context())
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":             time.Since(start).Seconds() * 1000,
				"httpStatus":     c.Response().Status,
				"host":           req.Host,
				"remoteIP":       c.RealIP(),
				"uri":            c.Request().URL.Path,
				"httpMethod":     c.Request().Method,
				"size":           res.Size,
				"userAgent":      req.UserAgent(),
				"acceptEncoding": c.Request().Header.Get("Accept-Encoding"),
				"referer":        c.Request().Header.Get("Referer"),
			}

			// set by the auth middleware on authenticated routes
			if caller, ok := c.Get("address").(domain.Address); ok {
				fields["caller"] = caller
			}

			logger := c.Get("ctx").(ctx.Ctx).WithFields(fields)
			switch n := res.Status; {
			case n >= 500:
				logger.WithField("nextErr", err).Error("response")
			case n >= 400:
				logger.WithField("nextErr", err).Warn("response")
			default:
				logger.Info("response")
			}
			return nil
		}
	}
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
