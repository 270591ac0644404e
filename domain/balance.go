package domain

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"golang.org/x/xerrors"
)

// BpsDenominator is the basis point scale, 10000 bps is 100%
const BpsDenominator = 10000

// maxBalance is 2^128 - 1
var maxBalance = new(big.Int).Sub(new(big.Int).Lsh(Big1, 128), Big1)

// Balance is an unsigned native currency amount in [0, 2^128-1].
// The zero value is a zero balance. Arithmetic never wraps, results outside
// the range fail with ErrArithmeticOverflow or ErrArithmeticUnderflow.
type Balance struct {
	v *big.Int
}

func NewBalance(v uint64) Balance {
	return normalize(new(big.Int).SetUint64(v))
}

// BalanceFromBig copies v into a Balance
func BalanceFromBig(v *big.Int) (Balance, error) {
	if v == nil {
		return Balance{}, nil
	}
	if v.Sign() < 0 {
		return Balance{}, ErrArithmeticUnderflow
	}
	if v.Cmp(maxBalance) > 0 {
		return Balance{}, ErrArithmeticOverflow
	}
	return normalize(new(big.Int).Set(v)), nil
}

// ParseBalance accepts decimal or 0x-prefixed hex
func ParseBalance(s string) (Balance, error) {
	if s == "" {
		return Balance{}, ErrInvalidNumberFormat
	}
	v, ok := math.ParseBig256(s)
	if !ok {
		return Balance{}, xerrors.Errorf("%w: %s", ErrInvalidNumberFormat, s)
	}
	return BalanceFromBig(v)
}

// MustParseBalance panics on malformed input, use it for constants only
func MustParseBalance(s string) Balance {
	b, err := ParseBalance(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MaxBalance returns the largest representable balance
func MaxBalance() Balance {
	return normalize(new(big.Int).Set(maxBalance))
}

// normalize keeps zero as a nil pointer so equal amounts are deeply equal
func normalize(v *big.Int) Balance {
	if v.Sign() == 0 {
		return Balance{}
	}
	return Balance{v}
}

func (b Balance) int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return b.v
}

// Big returns a copy of the amount
func (b Balance) Big() *big.Int {
	return new(big.Int).Set(b.int())
}

func (b Balance) IsZero() bool {
	return b.v == nil || b.v.Sign() == 0
}

func (b Balance) Cmp(o Balance) int {
	return b.int().Cmp(o.int())
}

func (b Balance) Equal(o Balance) bool {
	return b.Cmp(o) == 0
}

func (b Balance) Add(o Balance) (Balance, error) {
	return BalanceFromBig(new(big.Int).Add(b.int(), o.int()))
}

func (b Balance) Sub(o Balance) (Balance, error) {
	return BalanceFromBig(new(big.Int).Sub(b.int(), o.int()))
}

func (b Balance) Mul(n uint64) (Balance, error) {
	return BalanceFromBig(new(big.Int).Mul(b.int(), new(big.Int).SetUint64(n)))
}

// MulBps returns floor(b * bps / 10000). The intermediate product must stay
// inside the balance range.
func (b Balance) MulBps(bps uint16) (Balance, error) {
	product, err := b.Mul(uint64(bps))
	if err != nil {
		return Balance{}, err
	}
	return normalize(new(big.Int).Quo(product.int(), big.NewInt(BpsDenominator))), nil
}

func (b Balance) String() string {
	return b.int().String()
}

// Decimal scales the amount down by decimals for display
func (b Balance) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(b.int(), -decimals)
}

func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts both quoted and bare integers
func (b *Balance) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Balance) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, b.String()), nil
}

func (b *Balance) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.String {
		return xerrors.Errorf("unexpected bson type %s for balance", t)
	}
	s, _, ok := bsoncore.ReadString(data)
	if !ok {
		return xerrors.Errorf("malformed bson string for balance")
	}
	v, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
