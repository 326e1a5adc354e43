package config

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Telegram init data older than this is rejected
	InitDataMaxAge = 24 * time.Hour

	// Recent orders returned to the mini-app
	UserOrdersLimit = 10

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 50

	// Money precision (decimal places)
	MoneyScale = 2

	// Database pool sizing
	DBMaxConns = 20
	DBMinConns = 5

	// HTTP server timeouts
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Pricing rates. These are product-level tariffs, not tunables: the 10%
// on-board discount and the 10% accrual are advertised in the storefront.
var (
	// Automatic discount for ON_BOARD delivery
	OnBoardDiscountRate = decimal.RequireFromString("0.10")

	// At most this share of the post-discount total may be paid with bonuses
	MaxBonusRedeemShare = decimal.RequireFromString("0.50")

	// Bonuses accrued on the final payable amount
	BonusAccrualRate = decimal.RequireFromString("0.10")
)
