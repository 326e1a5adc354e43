package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aerolunch/backend/internal/domain"
)

const MaxMessageLen = 4096

// OrderNotifier pushes order events to the customer's chat and, when
// configured, to a staff log chat.
type OrderNotifier struct {
	bot       *bot.Bot
	logChatID int64
}

func NewOrderNotifier(b *bot.Bot, logChatID int64) *OrderNotifier {
	return &OrderNotifier{bot: b, logChatID: logChatID}
}

var statusTexts = map[domain.OrderStatus]string{
	domain.OrderStatusConfirmed: "✅ Заказ №%d подтверждён!",
	domain.OrderStatusPreparing: "👨‍🍳 Заказ №%d готовится.",
	domain.OrderStatusReady:     "📦 Заказ №%d готов к выдаче!",
	domain.OrderStatusDelivered: "🎉 Заказ №%d доставлен. Приятного аппетита!",
	domain.OrderStatusCancelled: "❌ Заказ №%d отменён. Использованные бонусы возвращены.",
}

// NotifyStatusChange tells the customer about an order status change.
// Delivery failures are logged, never propagated: the status change itself
// has already committed.
func (n *OrderNotifier) NotifyStatusChange(user *domain.User, order *domain.Order) {
	text, ok := statusTexts[order.Status]
	if !ok {
		return
	}

	chatID, err := strconv.ParseInt(user.TelegramID, 10, 64)
	if err != nil {
		slog.Error("bad telegram id", "user_id", user.ID, "telegram_id", user.TelegramID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf(text, order.OrderNumber),
	})
	if err != nil {
		slog.Error("failed to notify user", "user_id", user.ID, "order_id", order.ID, "error", err)
	}
}

// LogNewOrder posts a new-order summary to the staff log chat.
func (n *OrderNotifier) LogNewOrder(user *domain.User, order *domain.Order) {
	if n.logChatID == 0 {
		return
	}

	msg := fmt.Sprintf("🍱 *Новый заказ №%d*\n\n*Клиент:* %s\n*Тип:* %s\n*Сумма:* %s ₽\n*Скидка:* %s ₽\n*Бонусами:* %s",
		order.OrderNumber,
		user.DisplayName(),
		order.DeliveryType,
		order.TotalAmount.StringFixed(2),
		order.DiscountAmount.StringFixed(2),
		order.BonusesUsed.StringFixed(2),
	)
	if len([]rune(msg)) > MaxMessageLen {
		msg = string([]rune(msg)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.logChatID,
		Text:      msg,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		slog.Error("failed to send order log", "order_id", order.ID, "error", err)
	}
}
