package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aerolunch/backend/internal/api/middleware"
	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
)

type profileResponse struct {
	ID               int64           `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Username         string          `json:"username"`
	PhotoURL         string          `json:"photoUrl"`
	Phone            *string         `json:"phone"`
	TotalBonuses     decimal.Decimal `json:"totalBonuses"`
	TotalOrders      int             `json:"totalOrders"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	RegistrationDate string          `json:"registrationDate"`
}

// Profile returns the authenticated user's profile and bonus balance.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	respondJSON(w, http.StatusOK, profileResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Username:         user.Username,
		PhotoURL:         user.PhotoURL,
		Phone:            user.Phone,
		TotalBonuses:     user.TotalBonuses,
		TotalOrders:      user.TotalOrders,
		TotalSpent:       user.TotalSpent,
		RegistrationDate: user.RegistrationDate.UTC().Format(time.RFC3339),
	})
}

type updatePhoneRequest struct {
	Phone string `json:"phone"`
}

// UpdatePhone stores the user's contact phone.
func (h *Handler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	var req updatePhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}

	if err := h.users.UpdatePhone(r.Context(), user.ID, req.Phone); err != nil {
		slog.Error("update phone", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка сохранения")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bonusEntryResponse struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	OrderID       *int64          `json:"orderId,omitempty"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	ExpiresAt     *string         `json:"expiresAt,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

type bonusHistoryResponse struct {
	BonusHistory []bonusEntryResponse `json:"bonusHistory"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
}

// BonusHistory returns a page of the user's bonus ledger, newest first.
func (h *Handler) BonusHistory(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", config.DefaultPageSize)

	entries, total, err := h.users.BonusHistory(r.Context(), user.ID, page, limit)
	if err != nil {
		slog.Error("bonus history", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения истории бонусов")
		return
	}

	resp := bonusHistoryResponse{
		BonusHistory: make([]bonusEntryResponse, 0, len(entries)),
		Total:        total,
		Page:         page,
	}
	for _, e := range entries {
		resp.BonusHistory = append(resp.BonusHistory, toBonusEntryResponse(e))
	}
	respondJSON(w, http.StatusOK, resp)
}

func toBonusEntryResponse(e *domain.BonusEntry) bonusEntryResponse {
	var expiresAt *string
	if e.ExpiresAt != nil {
		s := e.ExpiresAt.UTC().Format(time.RFC3339)
		expiresAt = &s
	}
	return bonusEntryResponse{
		ID:            e.ID,
		Amount:        e.Amount,
		Type:          string(e.Type),
		Description:   e.Description,
		OrderID:       e.OrderID,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		ExpiresAt:     expiresAt,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
