package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aerolunch/backend/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	welcomeText := "👋 Привет! Это бот доставки еды на борт.\n\n" +
		"Откройте приложение, чтобы посмотреть меню и оформить заказ. " +
		"За каждый заказ начисляются бонусы, которыми можно оплатить до половины следующего.\n\n" +
		"📋 Команды:\n" +
		"/orders — Мои последние заказы"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   welcomeText,
		ReplyMarkup: telegram.InlineKeyboard(
			telegram.ButtonRow(telegram.WebAppButton("🍽 Открыть меню", h.webAppURL)),
		),
	})
}
