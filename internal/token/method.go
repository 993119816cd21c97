package token

import "errors"

// Method selects which asset a caller pays with: the USDT-style payment
// token or the platform's native currency.
type Method int

const (
	MethodUSDT   Method = 1
	MethodNative Method = 2
)

var ErrUnknownMethod = errors.New("unknown payment method")

func (m Method) String() string {
	switch m {
	case MethodUSDT:
		return "usdt"
	case MethodNative:
		return "native"
	}
	return "unknown"
}

func ParseMethod(v int) (Method, error) {
	m := Method(v)
	if m != MethodUSDT && m != MethodNative {
		return 0, ErrUnknownMethod
	}
	return m, nil
}
