package token

import (
	"errors"
	"math/big"
)

var (
	ErrInsufficientBalance   = errors.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.New("transfer amount exceeds allowance")
	ErrUnknownLedger         = errors.New("no ledger registered for asset ref")
)

// Ledger is the capability set the platform consumes from a fungible-token
// collaborator. Transfers report failure instead of silently truncating.
type Ledger interface {
	Symbol() string
	Decimals() uint8
	BalanceOf(account string) *big.Int
	Transfer(from, to string, amount *big.Int) error
	TransferFrom(spender, from, to string, amount *big.Int) error
}

var ledgers = make(map[string]Ledger)

// Register binds an asset ref to a ledger. Called during boot wiring only.
func Register(ref string, l Ledger) {
	ledgers[ref] = l
}

func Get(ref string) Ledger {
	return ledgers[ref]
}
