package token

import (
	"errors"
	"math/big"
)

var ErrBadAmount = errors.New("amount must be a non-negative integer")

// ParseAmount reads a base-unit amount from its decimal string form.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrBadAmount
	}
	return v, nil
}
