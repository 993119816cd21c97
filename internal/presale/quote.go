package presale

import (
	"math/big"

	"px-platform/internal/token"
)

// Rates are 1e18 fixed-point: payment units per whole sold token.
var fixedPointScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// convert prices an 18-decimal token amount in the payment asset's base
// units. Division truncates, so a caller never gains from rounding.
func convert(amount, rate *big.Int, decimals uint8) *big.Int {
	out := new(big.Int).Mul(amount, rate)
	out.Quo(out, fixedPointScale)
	switch {
	case decimals < 18:
		out.Quo(out, pow10(18-decimals))
	case decimals > 18:
		out.Mul(out, pow10(decimals-18))
	}
	return out
}

// QuoteUSDT prices a token amount in the payment asset without moving funds.
func (s *Service) QuoteUSDT(amount *big.Int) (*big.Int, error) {
	cfg := s.cfg.snapshot()
	pay := token.Get(cfg.paymentAsset)
	if pay == nil {
		return nil, token.ErrUnknownLedger
	}
	return convert(amount, cfg.usdtRate, pay.Decimals()), nil
}

// QuoteNative prices a token amount in the native currency.
func (s *Service) QuoteNative(amount *big.Int) *big.Int {
	cfg := s.cfg.snapshot()
	return convert(amount, cfg.ethRate, s.native.Decimals())
}

// Quote prices a token amount using whichever method the sale accepts.
func (s *Service) Quote(amount *big.Int) (*big.Int, error) {
	cfg := s.cfg.snapshot()
	switch cfg.method {
	case token.MethodUSDT:
		return s.QuoteUSDT(amount)
	case token.MethodNative:
		return s.QuoteNative(amount), nil
	}
	return nil, token.ErrUnknownMethod
}
