package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketcore/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GetNonce issues a one-time nonce the address has to sign to log in
	GetNonce(c ctx.Ctx, address Address) (string, error)
	// Login verifies the personal signature over the nonce message and returns a token
	Login(c ctx.Ctx, address Address, signature string) (string, error)
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (Address, error)
}
