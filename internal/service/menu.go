package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/repository/sqlc"
)

type MenuService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewMenuService(db *pgxpool.Pool, queries *sqlc.Queries) *MenuService {
	return &MenuService{db: db, queries: queries}
}

// Menu returns all categories with their available items and variants.
func (s *MenuService) Menu(ctx context.Context) ([]domain.Category, error) {
	catRows, err := s.queries.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	itemRows, err := s.queries.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	variantRows, err := s.queries.ListItemVariants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item variants: %w", err)
	}

	variantsByItem := make(map[int64][]domain.ItemVariant)
	for _, v := range variantRows {
		variantsByItem[v.ItemID] = append(variantsByItem[v.ItemID], domain.ItemVariant{
			ID:    v.ID,
			Title: v.Title,
			Price: v.Price,
		})
	}

	itemsByCategory := make(map[int64][]domain.MenuItem)
	for _, item := range itemRows {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], domain.MenuItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			ImageURL:    item.ImageUrl,
			Variants:    variantsByItem[item.ID],
		})
	}

	categories := make([]domain.Category, 0, len(catRows))
	for _, cat := range catRows {
		categories = append(categories, domain.Category{
			ID:    cat.ID,
			Title: cat.Title,
			Emoji: cat.Emoji,
			Items: itemsByCategory[cat.ID],
		})
	}
	return categories, nil
}
