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
	"github.com/x-xyz/marketcore/domain/offer"
	mockOffer "github.com/x-xyz/marketcore/domain/offer/mocks"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const (
	caller = domain.Address("0x00000000000000000000000000000000000000c0")
	nft    = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
)

type handlerSuite struct {
	suite.Suite

	e     *echo.Echo
	auth  *mockDomain.AuthUsecase
	offer *mockOffer.UseCase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = &mockDomain.AuthUsecase{}
	s.offer = &mockOffer.UseCase{}

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.offer, authMiddleware.New(s.auth))

	s.auth.On("ParseToken", mock.Anything, "tkn").Return(caller, nil).Maybe()
}

func (s *handlerSuite) TearDownTest() {
	s.offer.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestMakeOffer() {
	s.offer.On("MakeOffer", mock.Anything, marketplace.NewCall(caller), mock.MatchedBy(func(p offer.MakeOfferParams) bool {
		return p.Collection == nft && p.Quantity == 2 && p.PricePerItem.Equal(domain.NewBalance(100))
	})).Return(uint64(3), nil).Once()

	rec := s.do(http.MethodPost, "/offers", `{"collection":"`+string(nft)+`","quantity":2,"pricePerItem":"100"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"data":3,"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestMakeOfferAboveDeposit() {
	s.offer.On("MakeOffer", mock.Anything, mock.Anything, mock.Anything).Return(uint64(0), marketplace.ErrBalanceInsufficient).Once()

	rec := s.do(http.MethodPost, "/offers", `{"collection":"`+string(nft)+`","quantity":2,"pricePerItem":"100"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestMakeOfferInvalidCollection() {
	rec := s.do(http.MethodPost, "/offers", `{"collection":"nft","quantity":2,"pricePerItem":"100"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetMissing() {
	s.offer.On("GetOffer", mock.Anything, uint64(9)).Return(nil, marketplace.ErrOfferNotFound).Once()

	rec := s.do(http.MethodGet, "/offers/9", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestMalformedId() {
	rec := s.do(http.MethodGet, "/offers/nine", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestActive() {
	s.offer.On("GetOfferActive", mock.Anything, uint64(1)).Return(true, nil).Once()

	rec := s.do(http.MethodGet, "/offers/1/active", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":true,"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestCancelByStranger() {
	s.offer.On("CancelOffer", mock.Anything, marketplace.NewCall(caller), uint64(1)).Return(marketplace.ErrNotOwner).Once()

	rec := s.do(http.MethodDelete, "/offers/1", "")
	s.Equal(http.StatusForbidden, rec.Code)
}
