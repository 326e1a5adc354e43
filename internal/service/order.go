package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/repository/sqlc"
)

// DB is the transactional capability the order coordinator needs.
// *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type OrderService struct {
	db      DB
	queries *sqlc.Queries
	promos  *PromoService
}

func NewOrderService(db DB, queries *sqlc.Queries, promos *PromoService) *OrderService {
	return &OrderService{db: db, queries: queries, promos: promos}
}

type CreateOrderInput struct {
	UserID           int64
	Items            []domain.OrderItem
	DeliveryType     domain.DeliveryType
	PromoCode        string
	BonusesRequested decimal.Decimal
	DeliveryPlace    string
	Phone            string
	Comment          string
	IdempotencyKey   *uuid.UUID
}

// Create prices the order and applies it atomically: the order row, the
// user's balance and counters, and the ledger entries all commit together
// or not at all.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := ValidateOrderInput(in.Items, in.DeliveryType, in.BonusesRequested); err != nil {
		return nil, err
	}

	// Replayed submission: return the order the first attempt created.
	if in.IdempotencyKey != nil {
		row, err := s.queries.GetOrderByIdempotencyKey(ctx, in.IdempotencyKey)
		if err == nil {
			return rowToOrder(row)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get order by idempotency key: %w", err)
		}
	}

	userRow, err := s.queries.GetUserByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	rawTotal := itemsTotal(in.Items)

	promoDiscount, err := s.promos.Resolve(ctx, in.PromoCode, rawTotal)
	if err != nil {
		return nil, err
	}

	// The order row records the code only when it actually discounted
	// something, and always in its canonical form.
	if promoDiscount.IsPositive() {
		in.PromoCode = normalizePromoCode(in.PromoCode)
	} else {
		in.PromoCode = ""
	}

	pricing := CalculatePricing(PricingInput{
		Items:            in.Items,
		DeliveryType:     in.DeliveryType,
		PromoDiscount:    promoDiscount,
		RequestedBonuses: in.BonusesRequested,
		AvailableBonuses: userRow.TotalBonuses,
	})

	return s.persist(ctx, in, pricing)
}

// persist is the transactional part of order creation. It takes the pricing
// result as pre-computed input and re-validates the redemption against the
// row-locked balance, so two concurrent submissions cannot jointly overdraw.
func (s *OrderService) persist(ctx context.Context, in CreateOrderInput, pricing PricingResult) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.queries.WithTx(tx)

	user, err := qtx.GetUserForUpdate(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lock user: %w", err)
	}

	// The balance may have dropped since pricing: abort, never clamp.
	if pricing.BonusesUsed.GreaterThan(user.TotalBonuses) {
		return nil, domain.ErrInsufficientBonuses
	}

	var promoCode *string
	if code := in.PromoCode; code != "" {
		promoCode = &code
	}

	orderRow, err := qtx.CreateOrder(ctx, sqlc.CreateOrderParams{
		UserID:         in.UserID,
		Items:          itemsJSON,
		TotalAmount:    pricing.TotalAmount,
		DiscountAmount: pricing.DiscountAmount,
		BonusesUsed:    pricing.BonusesUsed,
		BonusesEarned:  pricing.BonusesEarned,
		PromoCode:      promoCode,
		DeliveryType:   string(in.DeliveryType),
		DeliveryPlace:  in.DeliveryPlace,
		Phone:          in.Phone,
		Comment:        in.Comment,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && in.IdempotencyKey != nil {
			// Lost the race against a concurrent replay of the same key.
			existing, getErr := s.queries.GetOrderByIdempotencyKey(ctx, in.IdempotencyKey)
			if getErr != nil {
				return nil, fmt.Errorf("get replayed order: %w", getErr)
			}
			return rowToOrder(existing)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if _, err := qtx.ApplyOrderToUser(ctx, sqlc.ApplyOrderToUserParams{
		ID:            in.UserID,
		BonusesUsed:   pricing.BonusesUsed,
		BonusesEarned: pricing.BonusesEarned,
		TotalAmount:   pricing.TotalAmount,
	}); err != nil {
		return nil, fmt.Errorf("apply order to user: %w", err)
	}

	entries := buildOrderLedger(user.TotalBonuses, pricing.BonusesUsed, pricing.BonusesEarned, orderRow.OrderNumber)
	for _, e := range entries {
		if _, err := qtx.CreateBonusEntry(ctx, sqlc.CreateBonusEntryParams{
			UserID:        in.UserID,
			Amount:        e.Amount,
			Type:          string(e.Type),
			Description:   e.Description,
			OrderID:       &orderRow.ID,
			BalanceBefore: e.BalanceBefore,
			BalanceAfter:  e.BalanceAfter,
		}); err != nil {
			return nil, fmt.Errorf("create bonus entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rowToOrder(orderRow)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row, err := s.queries.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return rowToOrder(row)
}

// ListByUser returns the user's most recent orders.
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := s.queries.ListOrdersByUser(ctx, sqlc.ListOrdersByUserParams{
		UserID: userID,
		Limit:  config.UserOrdersLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return rowsToOrders(rows)
}

// List returns a page of all orders. Admin surface.
func (s *OrderService) List(ctx context.Context, page, limit int) ([]*domain.Order, int64, error) {
	offset := (page - 1) * limit
	rows, err := s.queries.ListOrders(ctx, sqlc.ListOrdersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	total, err := s.queries.CountOrders(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	orders, err := rowsToOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus drives the order status machine. A transition to CANCELLED
// also reverses the order's bonus effects in the same transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidStatusTransition
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.queries.WithTx(tx)

	orderRow, err := qtx.GetOrderForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}

	current := domain.OrderStatus(orderRow.Status)
	if !current.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusTransition
	}

	updated, err := qtx.UpdateOrderStatus(ctx, sqlc.UpdateOrderStatusParams{
		ID:     orderID,
		Status: string(next),
	})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if next == domain.OrderStatusCancelled {
		user, err := qtx.GetUserForUpdate(ctx, orderRow.UserID)
		if err != nil {
			return nil, fmt.Errorf("lock user: %w", err)
		}

		entries := buildCancellationLedger(user.TotalBonuses, orderRow.BonusesUsed, orderRow.BonusesEarned, orderRow.OrderNumber)
		for _, e := range entries {
			if _, err := qtx.CreateBonusEntry(ctx, sqlc.CreateBonusEntryParams{
				UserID:        orderRow.UserID,
				Amount:        e.Amount,
				Type:          string(e.Type),
				Description:   e.Description,
				OrderID:       &orderRow.ID,
				BalanceBefore: e.BalanceBefore,
				BalanceAfter:  e.BalanceAfter,
			}); err != nil {
				return nil, fmt.Errorf("create bonus entry: %w", err)
			}
		}

		if delta := ledgerDelta(entries); !delta.IsZero() {
			if _, err := qtx.AdjustUserBonuses(ctx, sqlc.AdjustUserBonusesParams{
				ID:           orderRow.UserID,
				TotalBonuses: delta,
			}); err != nil {
				return nil, fmt.Errorf("adjust user bonuses: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rowToOrder(updated)
}

func itemsTotal(items []domain.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func rowsToOrders(rows []sqlc.Order) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := rowToOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
