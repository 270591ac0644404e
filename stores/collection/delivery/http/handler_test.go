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
	"github.com/x-xyz/marketcore/domain/collection"
	mockCollection "github.com/x-xyz/marketcore/domain/collection/mocks"
	"github.com/x-xyz/marketcore/domain/marketplace"
	mockDomain "github.com/x-xyz/marketcore/domain/mocks"
	"github.com/x-xyz/marketcore/middleware"
	authMiddleware "github.com/x-xyz/marketcore/stores/auth/delivery/http/middleware"
)

const (
	caller  = domain.Address("0x00000000000000000000000000000000000000c0")
	address = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
)

type handlerSuite struct {
	suite.Suite

	e          *echo.Echo
	auth       *mockDomain.AuthUsecase
	collection *mockCollection.UseCase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = &mockDomain.AuthUsecase{}
	s.collection = &mockCollection.UseCase{}

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.collection, authMiddleware.New(s.auth))

	s.auth.On("ParseToken", mock.Anything, "tkn").Return(caller, nil).Maybe()
}

func (s *handlerSuite) TearDownTest() {
	s.collection.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestRegister() {
	s.collection.On("Register", mock.Anything, marketplace.NewCall(caller), collection.RegisterParams{
		Address:         address,
		RoyaltyReceiver: caller,
		Royalty:         500,
	}).Return(nil).Once()

	rec := s.do(http.MethodPost, "/collections", `{"address":"`+string(address)+`","royaltyReceiver":"`+string(caller)+`","royalty":500}`)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *handlerSuite) TestRegisterInvalidAddress() {
	rec := s.do(http.MethodPost, "/collections", `{"address":"0x12","royaltyReceiver":"`+string(caller)+`","royalty":500}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestRegisterTwice() {
	s.collection.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(marketplace.ErrContractAlreadyRegistered).Once()

	rec := s.do(http.MethodPost, "/collections", `{"address":"`+string(address)+`","royaltyReceiver":"`+string(caller)+`","royalty":500}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *handlerSuite) TestRegisterWithoutToken() {
	req := httptest.NewRequest(http.MethodPost, "/collections", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGet() {
	s.collection.On("GetRegisteredCollection", mock.Anything, address).Return(&collection.RegisteredCollection{Address: address, Royalty: 500}, nil).Once()

	rec := s.do(http.MethodGet, "/collections/"+string(address), "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"royalty":500`)
}

func (s *handlerSuite) TestGetUnregistered() {
	s.collection.On("GetRegisteredCollection", mock.Anything, address).Return(nil, nil).Once()

	rec := s.do(http.MethodGet, "/collections/"+string(address), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestSetMetadataNotOwner() {
	s.collection.On("SetContractMetadata", mock.Anything, marketplace.NewCall(caller), address, "ipfs://x").Return(marketplace.ErrNotOwner).Once()

	rec := s.do(http.MethodPut, "/collections/"+string(address)+"/metadata", `{"metadataUri":"ipfs://x"}`)
	s.Equal(http.StatusForbidden, rec.Code)
}
