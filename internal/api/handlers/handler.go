package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/service"
)

// OrderService is the order-facing business logic used by the handlers.
type OrderService interface {
	Create(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	List(ctx context.Context, page, limit int) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error)
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePhone(ctx context.Context, userID int64, phone string) error
	BonusHistory(ctx context.Context, userID int64, page, limit int) ([]*domain.BonusEntry, int64, error)
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
}

type MenuService interface {
	Menu(ctx context.Context) ([]domain.Category, error)
}

type PromoService interface {
	Create(ctx context.Context, code string, discountType domain.DiscountType, value decimal.Decimal, validUntil *time.Time) (*domain.PromoCode, error)
	List(ctx context.Context) ([]*domain.PromoCode, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.PromoCode, error)
}

// Notifier pushes order events to Telegram chats.
type Notifier interface {
	NotifyStatusChange(user *domain.User, order *domain.Order)
	LogNewOrder(user *domain.User, order *domain.Order)
}

type Handler struct {
	orders   OrderService
	users    UserService
	menu     MenuService
	promos   PromoService
	notifier Notifier
}

type Deps struct {
	Orders   OrderService
	Users    UserService
	Menu     MenuService
	Promos   PromoService
	Notifier Notifier
}

func New(deps Deps) *Handler {
	return &Handler{
		orders:   deps.Orders,
		users:    deps.Users,
		menu:     deps.Menu,
		promos:   deps.Promos,
		notifier: deps.Notifier,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
