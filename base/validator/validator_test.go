package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952z",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksum",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestAddressTag() {
	type payload struct {
		Address string `validate:"required,address"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(payload{Address: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Validate(payload{Address: "0x000"}))
	s.Error(v.Validate(payload{}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
