package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BonusType string

const (
	BonusEarned  BonusType = "EARNED"
	BonusSpent   BonusType = "SPENT"
	BonusExpired BonusType = "EXPIRED"
)

// BonusEntry is one immutable row of the bonus ledger. The user's
// total_bonuses column is a cached projection of this ledger; the two are
// only ever changed together, inside one transaction.
type BonusEntry struct {
	ID            int64
	UserID        int64
	Amount        decimal.Decimal
	Type          BonusType
	Description   string
	OrderID       *int64
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	ExpiresAt     *time.Time
	CreatedAt     time.Time
}
