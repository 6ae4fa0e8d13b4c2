package order

import "errors"

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidInput  = errors.New("invalid order input")
)
