package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/repository/sqlc"
)

// pgTimestamptzToTime converts pgtype.Timestamptz to time.Time.
func pgTimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if ts.Valid {
		return ts.Time
	}
	return time.Time{}
}

// pgTimestamptzToTimePtr converts pgtype.Timestamptz to *time.Time.
func pgTimestamptzToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if ts.Valid {
		t := ts.Time
		return &t
	}
	return nil
}

// timePtrToPgTimestamptz converts *time.Time to pgtype.Timestamptz.
func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// rowToUser converts a sqlc-generated row to a domain.User.
func rowToUser(row sqlc.User) *domain.User {
	return &domain.User{
		ID:               row.ID,
		TelegramID:       row.TelegramID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Username:         row.Username,
		PhotoURL:         row.PhotoUrl,
		Phone:            row.Phone,
		TotalBonuses:     row.TotalBonuses,
		TotalOrders:      int(row.TotalOrders),
		TotalSpent:       row.TotalSpent,
		RegistrationDate: pgTimestamptzToTime(row.RegistrationDate),
		LastActive:       pgTimestamptzToTime(row.LastActive),
	}
}

func rowToOrder(row sqlc.Order) (*domain.Order, error) {
	var items []domain.OrderItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &domain.Order{
		ID:             row.ID,
		UserID:         row.UserID,
		OrderNumber:    row.OrderNumber,
		Items:          items,
		TotalAmount:    row.TotalAmount,
		DiscountAmount: row.DiscountAmount,
		BonusesUsed:    row.BonusesUsed,
		BonusesEarned:  row.BonusesEarned,
		PromoCode:      row.PromoCode,
		DeliveryType:   domain.DeliveryType(row.DeliveryType),
		DeliveryPlace:  row.DeliveryPlace,
		Phone:          row.Phone,
		Comment:        row.Comment,
		Status:         domain.OrderStatus(row.Status),
		IdempotencyKey: row.IdempotencyKey,
		CreatedAt:      pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:      pgTimestamptzToTime(row.UpdatedAt),
	}, nil
}

func rowToBonusEntry(row sqlc.BonusHistory) *domain.BonusEntry {
	return &domain.BonusEntry{
		ID:            row.ID,
		UserID:        row.UserID,
		Amount:        row.Amount,
		Type:          domain.BonusType(row.Type),
		Description:   row.Description,
		OrderID:       row.OrderID,
		BalanceBefore: row.BalanceBefore,
		BalanceAfter:  row.BalanceAfter,
		ExpiresAt:     pgTimestamptzToTimePtr(row.ExpiresAt),
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToPromo(row sqlc.PromoCode) *domain.PromoCode {
	return &domain.PromoCode{
		ID:            row.ID,
		Code:          row.Code,
		DiscountType:  domain.DiscountType(row.DiscountType),
		DiscountValue: row.DiscountValue,
		IsActive:      row.IsActive,
		ValidUntil:    pgTimestamptzToTimePtr(row.ValidUntil),
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
}
