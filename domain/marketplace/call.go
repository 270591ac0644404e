package marketplace

import (
	"github.com/x-xyz/marketcore/domain"
)

// Call describes who invokes a mutating operation and the native value
// attached to it. Operations that do not take payment ignore Value.
type Call struct {
	Caller domain.Address `json:"caller"`
	Value  domain.Balance `json:"value"`
}

func NewCall(caller domain.Address) Call {
	return Call{Caller: caller.ToLower()}
}

func (c Call) WithValue(value domain.Balance) Call {
	c.Value = value
	return c
}
