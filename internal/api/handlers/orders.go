package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/api/middleware"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/service"
)

type orderItemRequest struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Variant  string          `json:"variant,omitempty"`
}

type createOrderRequest struct {
	Items            []orderItemRequest `json:"items"`
	DeliveryType     string             `json:"deliveryType"`
	PromoCode        string             `json:"promoCode"`
	BonusesRequested decimal.Decimal    `json:"bonusesRequested"`
	DeliveryPlace    string             `json:"deliveryPlace"`
	Phone            string             `json:"phone"`
	Comment          string             `json:"comment"`
	IdempotencyKey   string             `json:"idempotencyKey"`
}

type createOrderResponse struct {
	OrderID        int64           `json:"orderId"`
	OrderNumber    int64           `json:"orderNumber"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	BonusesUsed    decimal.Decimal `json:"bonusesUsed"`
	BonusesEarned  decimal.Decimal `json:"bonusesEarned"`
}

// CreateOrder prices and persists an order for the authenticated user.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
			Variant:  it.Variant,
		})
	}

	var idemKey *uuid.UUID
	if req.IdempotencyKey != "" {
		key, err := uuid.Parse(req.IdempotencyKey)
		if err != nil {
			respondError(w, http.StatusBadRequest, "некорректный ключ идемпотентности")
			return
		}
		idemKey = &key
	}

	order, err := h.orders.Create(r.Context(), service.CreateOrderInput{
		UserID:           user.ID,
		Items:            items,
		DeliveryType:     domain.DeliveryType(req.DeliveryType),
		PromoCode:        req.PromoCode,
		BonusesRequested: req.BonusesRequested,
		DeliveryPlace:    req.DeliveryPlace,
		Phone:            req.Phone,
		Comment:          req.Comment,
		IdempotencyKey:   idemKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidItems),
			errors.Is(err, domain.ErrInvalidDeliveryType),
			errors.Is(err, domain.ErrInvalidAmount):
			respondError(w, http.StatusBadRequest, "некорректный состав заказа")
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "пользователь не найден")
		case errors.Is(err, domain.ErrInsufficientBonuses):
			respondError(w, http.StatusConflict, "недостаточно бонусов")
		default:
			slog.Error("create order", "user_id", user.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "ошибка создания заказа")
		}
		return
	}

	h.notifier.LogNewOrder(user, order)

	respondJSON(w, http.StatusOK, createOrderResponse{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		BonusesUsed:    order.BonusesUsed,
		BonusesEarned:  order.BonusesEarned,
	})
}

type orderResponse struct {
	ID             int64              `json:"id"`
	OrderNumber    int64              `json:"orderNumber"`
	Items          []domain.OrderItem `json:"items"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	BonusesUsed    decimal.Decimal    `json:"bonusesUsed"`
	BonusesEarned  decimal.Decimal    `json:"bonusesEarned"`
	PromoCode      *string            `json:"promoCode,omitempty"`
	DeliveryType   string             `json:"deliveryType"`
	DeliveryPlace  string             `json:"deliveryPlace"`
	Status         string             `json:"status"`
	CreatedAt      string             `json:"createdAt"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Items:          order.Items,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		BonusesUsed:    order.BonusesUsed,
		BonusesEarned:  order.BonusesEarned,
		PromoCode:      order.PromoCode,
		DeliveryType:   string(order.DeliveryType),
		DeliveryPlace:  order.DeliveryPlace,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListOrders returns the authenticated user's recent orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list orders", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения заказов")
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	respondJSON(w, http.StatusOK, resp)
}
