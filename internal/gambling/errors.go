package gambling

import "errors"

var (
	ErrNotAdmin = errors.New("caller is not the administrator")

	ErrGamblingClosed         = errors.New("gambling is not open now")
	ErrWrongMethod            = errors.New("payment method is not the accepted gambling method")
	ErrInsufficientHouseFunds = errors.New("contract balance should be more than game amount")
	ErrZeroRandomBound        = errors.New("random max number is not configured")
	ErrWrongStake             = errors.New("attached value must equal the game amount")
)
