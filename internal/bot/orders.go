package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aerolunch/backend/internal/domain"
)

var statusLabels = map[domain.OrderStatus]string{
	domain.OrderStatusPending:   "⏳ ожидает подтверждения",
	domain.OrderStatusConfirmed: "✅ подтверждён",
	domain.OrderStatusPreparing: "👨‍🍳 готовится",
	domain.OrderStatusReady:     "📦 готов к выдаче",
	domain.OrderStatusDelivered: "🎉 доставлен",
	domain.OrderStatusCancelled: "❌ отменён",
}

func (h *Handler) handleOrders(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	user, err := h.users.GetByTelegramID(ctx, strconv.FormatInt(update.Message.From.ID, 10))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "У вас пока нет заказов. Откройте приложение через /start, чтобы сделать первый!",
			})
			return
		}
		slog.Error("get user for /orders", "telegram_id", update.Message.From.ID, "error", err)
		return
	}

	orders, err := h.orders.ListByUser(ctx, user.ID)
	if err != nil {
		slog.Error("list orders for /orders", "user_id", user.ID, "error", err)
		return
	}
	if len(orders) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "У вас пока нет заказов.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Ваши последние заказы:\n\n")
	for _, order := range orders {
		label, ok := statusLabels[order.Status]
		if !ok {
			label = string(order.Status)
		}
		fmt.Fprintf(&sb, "Заказ №%d — %s ₽ — %s\n",
			order.OrderNumber, order.TotalAmount.StringFixed(2), label)
	}
	fmt.Fprintf(&sb, "\n💎 Баланс бонусов: %s", user.TotalBonuses.StringFixed(2))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}
