package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/repository/sqlc"
)

type PromoService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewPromoService(db *pgxpool.Pool, queries *sqlc.Queries) *PromoService {
	return &PromoService{db: db, queries: queries}
}

// Resolve translates a caller-supplied code into a discount contribution for
// the given raw order total. A missing, inactive or expired code contributes
// zero and is not an error: checkout proceeds without the discount.
func (s *PromoService) Resolve(ctx context.Context, code string, rawTotal decimal.Decimal) (decimal.Decimal, error) {
	code = normalizePromoCode(code)
	if code == "" {
		return decimal.Zero, nil
	}

	row, err := s.queries.GetPromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get promo: %w", err)
	}

	return PromoDiscount(rowToPromo(row), rawTotal, time.Now()), nil
}

// normalizePromoCode folds a caller-supplied code to its stored form.
func normalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoDiscount computes the discount a promo code contributes to an order
// with the given raw total. Unusable codes contribute zero. A FIXED discount
// is returned verbatim; clamping the final total to zero is the pricing
// calculator's job.
func PromoDiscount(promo *domain.PromoCode, rawTotal decimal.Decimal, now time.Time) decimal.Decimal {
	if !promo.Usable(now) {
		return decimal.Zero
	}
	switch promo.DiscountType {
	case domain.DiscountPercentage:
		return rawTotal.Mul(promo.DiscountValue).Div(decimal.NewFromInt(100)).Round(config.MoneyScale)
	case domain.DiscountFixed:
		return promo.DiscountValue
	}
	return decimal.Zero
}

// Create registers a new promo code. Admin surface.
func (s *PromoService) Create(ctx context.Context, code string, discountType domain.DiscountType, value decimal.Decimal, validUntil *time.Time) (*domain.PromoCode, error) {
	code = normalizePromoCode(code)
	if code == "" || !discountType.Valid() || value.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	row, err := s.queries.CreatePromo(ctx, sqlc.CreatePromoParams{
		Code:          code,
		DiscountType:  string(discountType),
		DiscountValue: value,
		IsActive:      true,
		ValidUntil:    timePtrToPgTimestamptz(validUntil),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrPromoExists
		}
		return nil, fmt.Errorf("create promo: %w", err)
	}
	return rowToPromo(row), nil
}

// List returns all promo codes. Admin surface.
func (s *PromoService) List(ctx context.Context) ([]*domain.PromoCode, error) {
	rows, err := s.queries.ListPromos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promos: %w", err)
	}
	promos := make([]*domain.PromoCode, 0, len(rows))
	for _, row := range rows {
		promos = append(promos, rowToPromo(row))
	}
	return promos, nil
}

// SetActive toggles a promo code. Admin surface.
func (s *PromoService) SetActive(ctx context.Context, id int64, active bool) (*domain.PromoCode, error) {
	row, err := s.queries.SetPromoActive(ctx, sqlc.SetPromoActiveParams{
		ID:       id,
		IsActive: active,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, fmt.Errorf("set promo active: %w", err)
	}
	return rowToPromo(row), nil
}
