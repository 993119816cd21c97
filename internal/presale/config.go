package presale

import (
	"math/big"
	"sync"

	"px-platform/internal/token"
)

// Config is the administrator-tunable sale state. Setters are plain
// assignments gated on the administrator identity; no cross-field
// validation happens here, keeping the bounds an operator responsibility.
type Config struct {
	mu    sync.RWMutex
	admin string

	baseToken    string
	paymentAsset string
	saleOpen     bool
	method       token.Method
	usdtRate     *big.Int
	ethRate      *big.Int
	minAmount    *big.Int
	maxAmount    *big.Int
	totalSold    *big.Int
}

func NewConfig(admin string) *Config {
	return &Config{
		admin:     admin,
		usdtRate:  new(big.Int),
		ethRate:   new(big.Int),
		minAmount: new(big.Int),
		maxAmount: new(big.Int),
		totalSold: new(big.Int),
	}
}

func (c *Config) guard(caller string) error {
	if caller != c.admin {
		return ErrNotAdmin
	}
	return nil
}

func (c *Config) SetBaseToken(caller, ref string) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseToken = ref
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

func (c *Config) SetSaleOpen(caller string, open bool) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saleOpen = open
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

func (c *Config) SetRate(caller string, m token.Method, rate *big.Int) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch m {
	case token.MethodUSDT:
		c.usdtRate = new(big.Int).Set(rate)
	case token.MethodNative:
		c.ethRate = new(big.Int).Set(rate)
	default:
		return token.ErrUnknownMethod
	}
	return nil
}

func (c *Config) SetMinAmount(caller string, amount *big.Int) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minAmount = new(big.Int).Set(amount)
	return nil
}

func (c *Config) SetMaxAmount(caller string, amount *big.Int) error {
	if err := c.guard(caller); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxAmount = new(big.Int).Set(amount)
	return nil
}

func (c *Config) TotalSold() *big.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return new(big.Int).Set(c.totalSold)
}

// addSold is called only after a purchase fully commits; totalSold never
// decreases.
func (c *Config) addSold(amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalSold.Add(c.totalSold, amount)
}

type snapshot struct {
	baseToken    string
	paymentAsset string
	saleOpen     bool
	method       token.Method
	usdtRate     *big.Int
	ethRate      *big.Int
	minAmount    *big.Int
	maxAmount    *big.Int
}

func (c *Config) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot{
		baseToken:    c.baseToken,
		paymentAsset: c.paymentAsset,
		saleOpen:     c.saleOpen,
		method:       c.method,
		usdtRate:     new(big.Int).Set(c.usdtRate),
		ethRate:      new(big.Int).Set(c.ethRate),
		minAmount:    new(big.Int).Set(c.minAmount),
		maxAmount:    new(big.Int).Set(c.maxAmount),
	}
}

type ConfigView struct {
	BaseToken    string `json:"base_token"`
	PaymentAsset string `json:"payment_asset"`
	SaleOpen     bool   `json:"sale_open"`
	Method       string `json:"method"`
	USDTRate     string `json:"usdt_rate"`
	ETHRate      string `json:"eth_rate"`
	MinAmount    string `json:"min_amount"`
	MaxAmount    string `json:"max_amount"`
	TotalSold    string `json:"total_sold"`
}

func (c *Config) View() ConfigView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ConfigView{
		BaseToken:    c.baseToken,
		PaymentAsset: c.paymentAsset,
		SaleOpen:     c.saleOpen,
		Method:       c.method.String(),
		USDTRate:     c.usdtRate.String(),
		ETHRate:      c.ethRate.String(),
		MinAmount:    c.minAmount.String(),
		MaxAmount:    c.maxAmount.String(),
		TotalSold:    c.totalSold.String(),
	}
}
