package service

import (
	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
)

// PricingInput is the fully resolved input of the pricing calculation.
// PromoDiscount must already be computed by the promo resolver; the
// calculator itself never looks anything up.
type PricingInput struct {
	Items            []domain.OrderItem
	DeliveryType     domain.DeliveryType
	PromoDiscount    decimal.Decimal
	RequestedBonuses decimal.Decimal
	AvailableBonuses decimal.Decimal
}

type PricingResult struct {
	RawTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	BonusesUsed    decimal.Decimal
	TotalAmount    decimal.Decimal
	BonusesEarned  decimal.Decimal
}

// CalculatePricing computes the financial breakdown of an order. Pure: the
// same input always yields the same result, so the transaction layer may
// safely retry with a previously computed result.
//
// The step order is fixed: the on-board discount and the promo discount are
// additive, the redeemable cap applies to the post-discount total, and
// accrual applies to the post-redemption total (redeeming bonuses reduces
// the bonuses earned on the same order).
func CalculatePricing(in PricingInput) PricingResult {
	rawTotal := itemsTotal(in.Items)

	deliveryDiscount := decimal.Zero
	if in.DeliveryType == domain.DeliveryOnBoard {
		deliveryDiscount = rawTotal.Mul(config.OnBoardDiscountRate).Round(config.MoneyScale)
	}

	discountAmount := deliveryDiscount.Add(in.PromoDiscount)

	// Discounts never invert the sign of the total.
	afterDiscount := rawTotal.Sub(discountAmount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	// Rounded down: the cap must never exceed half of the payable total.
	maxRedeemable := afterDiscount.Mul(config.MaxBonusRedeemShare).RoundDown(config.MoneyScale)

	bonusesUsed := in.RequestedBonuses
	if bonusesUsed.GreaterThan(maxRedeemable) {
		bonusesUsed = maxRedeemable
	}
	if bonusesUsed.GreaterThan(in.AvailableBonuses) {
		bonusesUsed = in.AvailableBonuses
	}
	if bonusesUsed.IsNegative() {
		bonusesUsed = decimal.Zero
	}

	totalAmount := afterDiscount.Sub(bonusesUsed)
	bonusesEarned := totalAmount.Mul(config.BonusAccrualRate).Round(config.MoneyScale)

	return PricingResult{
		RawTotal:       rawTotal,
		DiscountAmount: discountAmount,
		BonusesUsed:    bonusesUsed,
		TotalAmount:    totalAmount,
		BonusesEarned:  bonusesEarned,
	}
}

// ValidateOrderInput rejects malformed order payloads before any computation.
func ValidateOrderInput(items []domain.OrderItem, deliveryType domain.DeliveryType, requestedBonuses decimal.Decimal) error {
	if len(items) == 0 {
		return domain.ErrInvalidItems
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.Price.IsNegative() {
			return domain.ErrInvalidItems
		}
	}
	if !deliveryType.Valid() {
		return domain.ErrInvalidDeliveryType
	}
	if requestedBonuses.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}
