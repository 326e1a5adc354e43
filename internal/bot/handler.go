package bot

import (
	"github.com/go-telegram/bot"

	"github.com/aerolunch/backend/internal/service"
)

// Handler holds the dependencies needed by bot command handlers.
type Handler struct {
	users     *service.UserService
	orders    *service.OrderService
	webAppURL string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Users     *service.UserService
	Orders    *service.OrderService
	WebAppURL string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		users:     deps.Users,
		orders:    deps.Orders,
		webAppURL: deps.WebAppURL,
	}
}

// Register attaches all command handlers to the bot.
func (h *Handler) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/orders", bot.MatchTypeExact, h.handleOrders)
}
