package telegram

import (
	"github.com/go-telegram/bot/models"
)

// WebAppButton creates a button that opens the mini-app.
func WebAppButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:   text,
		WebApp: &models.WebAppInfo{URL: url},
	}
}

// URLButton creates a URL inline keyboard button.
func URLButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text: text,
		URL:  url,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}
