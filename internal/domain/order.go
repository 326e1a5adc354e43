package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryType string

const (
	DeliveryOnBoard  DeliveryType = "ON_BOARD"
	DeliveryTakeaway DeliveryType = "TAKEAWAY"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryOnBoard || d == DeliveryTakeaway
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderStatusFlow lists the allowed next statuses for each current status.
// DELIVERED and CANCELLED are terminal.
var orderStatusFlow = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Variant  string          `json:"variant,omitempty"`
}

type Order struct {
	ID             int64
	UserID         int64
	OrderNumber    int64
	Items          []OrderItem
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	BonusesUsed    decimal.Decimal
	BonusesEarned  decimal.Decimal
	PromoCode      *string
	DeliveryType   DeliveryType
	DeliveryPlace  string
	Phone          string
	Comment        string
	Status         OrderStatus
	IdempotencyKey *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
