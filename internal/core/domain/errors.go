package domain

import "errors"

var (
	ErrOutOfStock              = errors.New("out of stock")
	ErrStockLimitReached       = errors.New("stock limit reached")
	ErrEmptyCart               = errors.New("empty cart")
	ErrItemNotFound            = errors.New("menu item not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInsufficientTender      = errors.New("tendered amount below total")
	ErrInvalidPayment          = errors.New("invalid payment info")
)
