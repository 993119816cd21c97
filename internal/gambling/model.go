package gambling

// Result is the record emitted for every settled wager. It is the only way
// an observer learns the outcome after the fact.
type Result struct {
	Player    string `json:"player"`
	Method    string `json:"method"`
	Stake     string `json:"stake"`
	WinStatus bool   `json:"win_status"`
	Payout    string `json:"payout"`
	Time      int64  `json:"time"`
}
