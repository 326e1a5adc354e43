package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Emoji string     `json:"emoji"`
	Items []MenuItem `json:"items"`
}

type MenuItem struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Variants    []ItemVariant   `json:"variants"`
}

type ItemVariant struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}
