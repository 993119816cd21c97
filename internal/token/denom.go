package token

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Display renders a base-unit amount at the asset's decimal scale, for
// event payloads and dashboards. "400000000" at 6 decimals becomes "400".
func Display(amount *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
