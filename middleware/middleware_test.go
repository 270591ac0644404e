package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/base/ctx"
)

func TestAddContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got interface{}
	h := InitMiddleware().AddContext()(func(c echo.Context) error {
		got = c.Get("ctx")
		return nil
	})
	require.NoError(t, h(c))

	cont, ok := got.(ctx.Ctx)
	require.True(t, ok)
	require.NoError(t, cont.Err())
}

func TestIsValidAddress(t *testing.T) {
	e := echo.New()
	e.GET("/:address", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, IsValidAddress("address"))

	tests := []struct {
		address string
		want    int
	}{
		{"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", http.StatusNoContent},
		{"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", http.StatusNoContent},
		{"0xbc4ca0", http.StatusBadRequest},
		{"not-an-address", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+tt.address, nil))
		require.Equal(t, tt.want, rec.Code, tt.address)
	}
}
