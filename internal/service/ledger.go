package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/domain"
)

// ledgerEntry is a not-yet-persisted bonus ledger row.
type ledgerEntry struct {
	Amount        decimal.Decimal
	Type          domain.BonusType
	Description   string
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// buildOrderLedger folds an order's bonus effects over the pre-transaction
// balance: first the spend, then the accrual on the reduced balance. The
// EARNED entry's BalanceBefore is the SPENT entry's BalanceAfter, so the
// running balance reconciles even when both entries exist.
func buildOrderLedger(balanceBefore, bonusesUsed, bonusesEarned decimal.Decimal, orderNumber int64) []ledgerEntry {
	var entries []ledgerEntry
	balance := balanceBefore

	if bonusesUsed.IsPositive() {
		after := balance.Sub(bonusesUsed)
		entries = append(entries, ledgerEntry{
			Amount:        bonusesUsed,
			Type:          domain.BonusSpent,
			Description:   fmt.Sprintf("Оплата бонусами заказа №%d", orderNumber),
			BalanceBefore: balance,
			BalanceAfter:  after,
		})
		balance = after
	}

	if bonusesEarned.IsPositive() {
		after := balance.Add(bonusesEarned)
		entries = append(entries, ledgerEntry{
			Amount:        bonusesEarned,
			Type:          domain.BonusEarned,
			Description:   fmt.Sprintf("Начисление за заказ №%d", orderNumber),
			BalanceBefore: balance,
			BalanceAfter:  after,
		})
	}

	return entries
}

// buildCancellationLedger reverses an order's bonus effects: spent bonuses
// are returned in full, earned bonuses are revoked down to what the balance
// still holds (the user may have already spent them on another order).
func buildCancellationLedger(balanceBefore, bonusesUsed, bonusesEarned decimal.Decimal, orderNumber int64) []ledgerEntry {
	var entries []ledgerEntry
	balance := balanceBefore

	if bonusesUsed.IsPositive() {
		after := balance.Add(bonusesUsed)
		entries = append(entries, ledgerEntry{
			Amount:        bonusesUsed,
			Type:          domain.BonusEarned,
			Description:   fmt.Sprintf("Возврат бонусов за отменённый заказ №%d", orderNumber),
			BalanceBefore: balance,
			BalanceAfter:  after,
		})
		balance = after
	}

	revoke := bonusesEarned
	if revoke.GreaterThan(balance) {
		revoke = balance
	}
	if revoke.IsPositive() {
		after := balance.Sub(revoke)
		entries = append(entries, ledgerEntry{
			Amount:        revoke,
			Type:          domain.BonusSpent,
			Description:   fmt.Sprintf("Списание бонусов отменённого заказа №%d", orderNumber),
			BalanceBefore: balance,
			BalanceAfter:  after,
		})
	}

	return entries
}

// ledgerDelta is the net balance change a set of entries applies.
func ledgerDelta(entries []ledgerEntry) decimal.Decimal {
	delta := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case domain.BonusSpent, domain.BonusExpired:
			delta = delta.Sub(e.Amount)
		case domain.BonusEarned:
			delta = delta.Add(e.Amount)
		}
	}
	return delta
}
