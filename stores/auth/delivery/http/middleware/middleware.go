package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a bearer token and puts its address under "address"
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", ads)
		return true, nil
	}
}
