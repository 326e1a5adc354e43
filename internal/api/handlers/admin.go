package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
)

type adminOrdersResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
}

// AdminListOrders returns a page of all orders.
func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", config.DefaultPageSize)

	orders, total, err := h.orders.List(r.Context(), page, limit)
	if err != nil {
		slog.Error("admin list orders", "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения заказов")
		return
	}

	resp := adminOrdersResponse{
		Orders: make([]orderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
	}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(order))
	}
	respondJSON(w, http.StatusOK, resp)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// AdminUpdateOrderStatus drives the order status machine and notifies the
// customer.
func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "некорректный идентификатор заказа")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "заказ не найден")
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			respondError(w, http.StatusConflict, "недопустимый переход статуса")
		default:
			slog.Error("update order status", "order_id", orderID, "error", err)
			respondError(w, http.StatusInternalServerError, "ошибка обновления статуса")
		}
		return
	}

	if user, err := h.users.GetByID(r.Context(), order.UserID); err == nil {
		h.notifier.NotifyStatusChange(user, order)
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

type adminUserResponse struct {
	ID               int64           `json:"id"`
	TelegramID       string          `json:"telegramId"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Username         string          `json:"username"`
	Phone            *string         `json:"phone"`
	TotalBonuses     decimal.Decimal `json:"totalBonuses"`
	TotalOrders      int             `json:"totalOrders"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	RegistrationDate string          `json:"registrationDate"`
	LastActive       string          `json:"lastActive"`
}

type adminUsersResponse struct {
	Users []adminUserResponse `json:"users"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
}

// AdminListUsers returns a page of customers.
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", config.DefaultPageSize)

	users, total, err := h.users.List(r.Context(), page, limit)
	if err != nil {
		slog.Error("admin list users", "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения пользователей")
		return
	}

	resp := adminUsersResponse{
		Users: make([]adminUserResponse, 0, len(users)),
		Total: total,
		Page:  page,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, adminUserResponse{
			ID:               u.ID,
			TelegramID:       u.TelegramID,
			FirstName:        u.FirstName,
			LastName:         u.LastName,
			Username:         u.Username,
			Phone:            u.Phone,
			TotalBonuses:     u.TotalBonuses,
			TotalOrders:      u.TotalOrders,
			TotalSpent:       u.TotalSpent,
			RegistrationDate: u.RegistrationDate.UTC().Format(time.RFC3339),
			LastActive:       u.LastActive.UTC().Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

type createPromoRequest struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	ValidUntil    *time.Time      `json:"validUntil"`
}

type promoResponse struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	IsActive      bool            `json:"isActive"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
}

func toPromoResponse(p *domain.PromoCode) promoResponse {
	return promoResponse{
		ID:            p.ID,
		Code:          p.Code,
		DiscountType:  string(p.DiscountType),
		DiscountValue: p.DiscountValue,
		IsActive:      p.IsActive,
		ValidUntil:    p.ValidUntil,
	}
}

// AdminCreatePromo registers a promo code.
func (h *Handler) AdminCreatePromo(w http.ResponseWriter, r *http.Request) {
	var req createPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	promo, err := h.promos.Create(r.Context(), req.Code, domain.DiscountType(req.DiscountType), req.DiscountValue, req.ValidUntil)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPromoExists):
			respondError(w, http.StatusConflict, "промокод уже существует")
		case errors.Is(err, domain.ErrInvalidAmount):
			respondError(w, http.StatusBadRequest, "некорректные параметры промокода")
		default:
			slog.Error("create promo", "error", err)
			respondError(w, http.StatusInternalServerError, "ошибка создания промокода")
		}
		return
	}
	respondJSON(w, http.StatusCreated, toPromoResponse(promo))
}

// AdminListPromos returns all promo codes.
func (h *Handler) AdminListPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promos.List(r.Context())
	if err != nil {
		slog.Error("list promos", "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения промокодов")
		return
	}

	resp := make([]promoResponse, 0, len(promos))
	for _, p := range promos {
		resp = append(resp, toPromoResponse(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

type setPromoActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// AdminSetPromoActive toggles a promo code.
func (h *Handler) AdminSetPromoActive(w http.ResponseWriter, r *http.Request) {
	promoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "некорректный идентификатор промокода")
		return
	}

	var req setPromoActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	promo, err := h.promos.SetActive(r.Context(), promoID, req.IsActive)
	if err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			respondError(w, http.StatusNotFound, "промокод не найден")
			return
		}
		slog.Error("set promo active", "promo_id", promoID, "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка обновления промокода")
		return
	}
	respondJSON(w, http.StatusOK, toPromoResponse(promo))
}
