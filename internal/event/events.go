package event

const (
	EventTokenPurchased = "presale.purchased"
	EventWagerSettled   = "wager.settled"
	EventTreasurySwept  = "treasury.withdrawn"
)
