package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New returns a validate instance knowing the `address` tag
func New() *validator.Validate {
	v := validator.New()
	// registering a fixed tag name with a non nil func cannot fail
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
