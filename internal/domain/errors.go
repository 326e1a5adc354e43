package domain

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrPromoNotFound           = errors.New("promo code not found")
	ErrPromoExists             = errors.New("promo code already exists")
	ErrInvalidItems            = errors.New("invalid order items")
	ErrInvalidDeliveryType     = errors.New("invalid delivery type")
	ErrInsufficientBonuses     = errors.New("insufficient bonus balance")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrInvalidAmount           = errors.New("invalid amount")
)
