package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
	"github.com/x-xyz/marketcore/domain/token"
	"github.com/x-xyz/marketcore/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	errs   []error
	status int
}{
	{
		errs:   []error{domain.ErrNotFound, query.ErrNotFound, marketplace.ErrOfferNotFound, marketplace.ErrNftContractHashNotSet, marketplace.ErrFeeRecipientNotSet, token.ErrTokenNotFound},
		status: http.StatusNotFound,
	},
	{
		errs:   []error{marketplace.ErrNotOwner, token.ErrNotTokenOwner},
		status: http.StatusForbidden,
	},
	{
		errs:   []error{domain.ErrConflict, marketplace.ErrContractAlreadyRegistered, marketplace.ErrReentrantCall},
		status: http.StatusConflict,
	},
	{
		errs: []error{
			domain.ErrBadParamInput,
			domain.ErrInvalidNumberFormat,
			domain.ErrInvalidAddress,
			domain.ErrArithmeticOverflow,
			domain.ErrArithmeticUnderflow,
			marketplace.ErrNotRegisteredContract,
			marketplace.ErrTokenDoesNotExist,
			marketplace.ErrTokenNotApproved,
			marketplace.ErrItemNotListedForSale,
			marketplace.ErrAlreadyOwner,
			marketplace.ErrBadBuyValue,
			marketplace.ErrFeeTooHigh,
			marketplace.ErrBalanceInsufficient,
			marketplace.ErrOfferTokenMismatch,
			marketplace.ErrInvalidQuantity,
		},
		status: http.StatusBadRequest,
	},
	{
		errs:   []error{domain.ErrInvalidSignature, domain.ErrInvalidNonce},
		status: http.StatusUnauthorized,
	},
}

// StatusOf maps a usecase error onto an http status, unknown errors are 500
func StatusOf(err error) int {
	for _, es := range errStatus {
		for _, e := range es.errs {
			if errors.Is(err, e) {
				return es.status
			}
		}
	}
	return http.StatusInternalServerError
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if s := StatusOf(err); s != http.StatusInternalServerError {
			status = s
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
