package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

type PromoCode struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	IsActive      bool
	ValidUntil    *time.Time
	CreatedAt     time.Time
}

// Usable reports whether the code may contribute a discount at the given time.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.ValidUntil != nil && p.ValidUntil.Before(now) {
		return false
	}
	return true
}
