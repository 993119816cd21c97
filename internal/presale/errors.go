package presale

import "errors"

var (
	ErrNotAdmin = errors.New("caller is not the administrator")

	ErrSaleClosed         = errors.New("presale is not open now")
	ErrWrongMethod        = errors.New("payment method is not the accepted sale method")
	ErrBelowMinimum       = errors.New("sale amount is below the minimum sale amount")
	ErrAboveMaximum       = errors.New("sale amount is above the maximum sale amount")
	ErrInsufficientSupply = errors.New("purchased amount exceeds the remaining presale supply")

	ErrInsufficientPayment = errors.New("attached value does not cover the sale amount")
)
