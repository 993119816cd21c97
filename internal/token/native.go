package token

import (
	"math/big"
	"sync"
)

// Native is the platform currency ledger. Value moves with the call itself,
// so there is no allowance surface.
type Native struct {
	mu       sync.Mutex
	balances map[string]*big.Int
}

func NewNative() *Native {
	return &Native{balances: make(map[string]*big.Int)}
}

func (n *Native) Symbol() string  { return "ETH" }
func (n *Native) Decimals() uint8 { return 18 }

func (n *Native) BalanceOf(account string) *big.Int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if b, ok := n.balances[account]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (n *Native) Mint(account string, amount *big.Int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if b, ok := n.balances[account]; ok {
		b.Add(b, amount)
		return
	}
	n.balances[account] = new(big.Int).Set(amount)
}

func (n *Native) Transfer(from, to string, amount *big.Int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	b, ok := n.balances[from]
	if !ok || b.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	b.Sub(b, amount)
	if t, ok := n.balances[to]; ok {
		t.Add(t, amount)
	} else {
		n.balances[to] = new(big.Int).Set(amount)
	}
	return nil
}
