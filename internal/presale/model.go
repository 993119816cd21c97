package presale

// Purchase is the record emitted for every successful purchase. Amounts are
// base-unit decimal strings.
type Purchase struct {
	Buyer     string `json:"buyer"`
	Method    string `json:"method"`
	AmountOut string `json:"amount_out"`
	AmountIn  string `json:"amount_in"`
	Time      int64  `json:"time"`
}
