package exchangeerrors

import "errors"

// Repository-level errors
var (
	ErrMarketNotFound = errors.New("product or size variant not found")
	ErrOfferNotFound  = errors.New("offer not found")
	ErrOrderNotFound  = errors.New("order not found")
)

// business logic errors
var (
	ErrInvalidOffer     = errors.New("invalid offer")
	ErrDuplicateOffer   = errors.New("an open offer already exists for this user, product and size")
	ErrStatusConflict   = errors.New("status transition not allowed")
	ErrSettlementFailed = errors.New("settlement failed")
)
