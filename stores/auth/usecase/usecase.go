package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/ethereum"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/service/redis"
)

const (
	tokenTTL        = 24 * time.Hour
	defaultNonceTTL = 5 * time.Minute
)

type AuthUseCaseCfg struct {
	JwtSecret string
	Redis     redis.Service
	// SigningMsgTemplate has one %s, replaced with the nonce
	SigningMsgTemplate string
	NonceTTL           time.Duration
}

type impl struct {
	jwtSecret []byte
	redis     redis.Service
	template  string
	nonceTTL  time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	nonceTTL := cfg.NonceTTL
	if nonceTTL == 0 {
		nonceTTL = defaultNonceTTL
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		redis:     cfg.Redis,
		template:  cfg.SigningMsgTemplate,
		nonceTTL:  nonceTTL,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}

func (im *impl) GetNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	if err := im.redis.Set(ctx, nonceKey(address), []byte(nonce), im.nonceTTL); err != nil {
		ctx.WithField("err", err).Error("redis.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) Login(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	// a nonce is good for one attempt
	nonce, err := im.redis.GetDel(ctx, nonceKey(address))
	if errors.Is(err, redis.ErrNotFound) {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("redis.GetDel failed")
		return "", err
	}

	msg := fmt.Sprintf(im.template, string(nonce))
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address)); err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	return im.SignToken(ctx, address)
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return domain.Address(claims.Address), nil
		}
	}

	if err == nil {
		err = domain.ErrInvalidSignature
	}
	return "", err
}
