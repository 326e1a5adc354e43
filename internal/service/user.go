package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/repository/sqlc"
	"github.com/aerolunch/backend/internal/telegram"
)

type UserService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewUserService(db *pgxpool.Pool, queries *sqlc.Queries) *UserService {
	return &UserService{db: db, queries: queries}
}

// UpsertFromTelegram creates or refreshes the user record from a validated
// web-app identity. Runs on every authenticated request.
func (s *UserService) UpsertFromTelegram(ctx context.Context, tgUser telegram.WebAppUser) (*domain.User, error) {
	row, err := s.queries.UpsertUser(ctx, sqlc.UpsertUserParams{
		TelegramID: fmt.Sprintf("%d", tgUser.ID),
		FirstName:  tgUser.FirstName,
		LastName:   tgUser.LastName,
		Username:   tgUser.Username,
		PhotoUrl:   tgUser.PhotoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return rowToUser(row), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return rowToUser(row), nil
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	row, err := s.queries.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return rowToUser(row), nil
}

func (s *UserService) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	var p *string
	if phone != "" {
		p = &phone
	}
	if err := s.queries.UpdateUserPhone(ctx, sqlc.UpdateUserPhoneParams{
		ID:    userID,
		Phone: p,
	}); err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	return nil
}

// BonusHistory returns a page of the user's ledger, newest first.
func (s *UserService) BonusHistory(ctx context.Context, userID int64, page, limit int) ([]*domain.BonusEntry, int64, error) {
	if limit <= 0 || limit > config.MaxPageSize {
		limit = config.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	rows, err := s.queries.ListBonusHistoryByUser(ctx, sqlc.ListBonusHistoryByUserParams{
		UserID: userID,
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list bonus history: %w", err)
	}

	total, err := s.queries.CountBonusHistoryByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count bonus history: %w", err)
	}

	entries := make([]*domain.BonusEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToBonusEntry(row))
	}
	return entries, total, nil
}

// List returns a page of users. Admin surface.
func (s *UserService) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	if limit <= 0 || limit > config.MaxPageSize {
		limit = config.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	rows, err := s.queries.ListUsers(ctx, sqlc.ListUsersParams{
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	total, err := s.queries.CountUsers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, total, nil
}
