package domain

import (
	"math/big"
	"strings"
)

var (
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Address is an account or contract address, stored lower-cased
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId identifies a token inside a collection
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) IsEmpty() bool {
	return len(i) == 0
}
