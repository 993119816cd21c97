package gambling

import (
	"math/big"
	"sync"

	"px-platform/internal/token"
)

// Config is the administrator-tunable wager state. Like the sale config,
// setters are identity-gated plain assignments.
type Config struct {
	mu    sync.RWMutex
	admin string

	paymentAsset string
	open         bool
	method       token.Method
	gameAmount   *big.Int
	randomMax    uint64
}

func NewConfig(admin string) *Config {
	return &Config{
		admin:      admin,
		gameAmount: new(big.Int),
	}
}

func (c *Config) guard(caller string) error {
	if caller != c.admin {
		return ErrNotAdmin
	}
	return nil
}

func (c *Config) SetPaymentAsset(caller, ref string) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paymentAsset = ref
	return nil
}

func (c *Config) SetOpen(caller string, open bool) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
	return nil
}

func (c *Config) SetMethod(caller string, m token.Method) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.method = m
	return nil
}

func (c *Config) SetGameAmount(caller string, amount *big.Int) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameAmount = new(big.Int).Set(amount)
	return nil
}

// SetRandomBound sets the exclusive upper bound of the outcome space. The
// win probability is exactly 1/bound.
func (c *Config) SetRandomBound(caller string, bound uint64) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.randomMax = bound
	return nil
}

type snapshot struct {
	paymentAsset string
	open         bool
	method       token.Method
	gameAmount   *big.Int
	randomMax    uint64
}

func (c *Config) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot{
		paymentAsset: c.paymentAsset,
		open:         c.open,
		method:       c.method,
		gameAmount:   new(big.Int).Set(c.gameAmount),
		randomMax:    c.randomMax,
	}
}

type ConfigView struct {
	PaymentAsset    string `json:"payment_asset"`
	GamblingOpen    bool   `json:"gambling_open"`
	Method          string `json:"method"`
	GameAmount      string `json:"game_amount"`
	RandomMaxNumber uint64 `json:"random_max_number"`
}

func (c *Config) View() ConfigView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ConfigView{
		PaymentAsset:    c.paymentAsset,
		GamblingOpen:    c.open,
		Method:          c.method.String(),
		GameAmount:      c.gameAmount.String(),
		RandomMaxNumber: c.randomMax,
	}
}
