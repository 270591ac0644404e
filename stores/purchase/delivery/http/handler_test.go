package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/validator"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mockDomain "github.com/x-xyz/marketcore/domain/mocks"
	mockPurchase "github.com/x-xyz/marketcore/domain/purchase/mocks"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const (
	caller = domain.Address("0x00000000000000000000000000000000000000c0")
	nft    = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
)

type handlerSuite struct {
	suite.Suite

	e        *echo.Echo
	auth     *mockDomain.AuthUsecase
	purchase *mockPurchase.UseCase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = &mockDomain.AuthUsecase{}
	s.purchase = &mockPurchase.UseCase{}

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.purchase, authMiddleware.New(s.auth))

	s.auth.On("ParseToken", mock.Anything, "tkn").Return(caller, nil).Maybe()
}

func (s *handlerSuite) TearDownTest() {
	s.purchase.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestBuy() {
	call := marketplace.NewCall(caller).WithValue(domain.NewBalance(1000))
	s.purchase.On("Buy", mock.Anything, call, nft, domain.TokenId("42")).Return(nil).Once()

	rec := s.do(http.MethodPost, "/listings/"+string(nft)+"/42/buy", `{"value":"1000"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestBuyBelowPrice() {
	s.purchase.On("Buy", mock.Anything, mock.Anything, nft, domain.TokenId("42")).Return(marketplace.ErrBadBuyValue).Once()

	rec := s.do(http.MethodPost, "/listings/"+string(nft)+"/42/buy", `{"value":"1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestBuyReentered() {
	s.purchase.On("Buy", mock.Anything, mock.Anything, nft, domain.TokenId("42")).Return(marketplace.ErrReentrantCall).Once()

	rec := s.do(http.MethodPost, "/listings/"+string(nft)+"/42/buy", `{"value":"1000"}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *handlerSuite) TestAcceptOffer() {
	s.purchase.On("AcceptOffer", mock.Anything, marketplace.NewCall(caller), uint64(3), domain.TokenId("42")).Return(nil).Once()

	rec := s.do(http.MethodPost, "/offers/3/accept", `{"tokenId":"42"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestFulfillOfferWithoutToken() {
	rec := s.do(http.MethodPost, "/offers/3/fulfill", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestFulfillMissingOffer() {
	s.purchase.On("FulfillOffer", mock.Anything, marketplace.NewCall(caller), uint64(4), domain.TokenId("42")).Return(marketplace.ErrOfferNotFound).Once()

	rec := s.do(http.MethodPost, "/offers/4/fulfill", `{"tokenId":"42"}`)
	s.Equal(http.StatusNotFound, rec.Code)
}
