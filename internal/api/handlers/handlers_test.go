package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolunch/backend/internal/api/middleware"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/service"
)

type stubOrders struct {
	createFn       func(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error)
	listByUserFn   func(ctx context.Context, userID int64) ([]*domain.Order, error)
	listFn         func(ctx context.Context, page, limit int) ([]*domain.Order, int64, error)
	updateStatusFn func(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error)
}

func (s *stubOrders) Create(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrders) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (s *stubOrders) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubOrders) List(ctx context.Context, page, limit int) ([]*domain.Order, int64, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubOrders) UpdateStatus(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatusFn(ctx, orderID, next)
}

type stubUsers struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.User, error)
	updatePhoneFn  func(ctx context.Context, userID int64, phone string) error
	bonusHistoryFn func(ctx context.Context, userID int64, page, limit int) ([]*domain.BonusEntry, int64, error)
	listFn         func(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
}

func (s *stubUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUsers) UpdatePhone(ctx context.Context, userID int64, phone string) error {
	return s.updatePhoneFn(ctx, userID, phone)
}

func (s *stubUsers) BonusHistory(ctx context.Context, userID int64, page, limit int) ([]*domain.BonusEntry, int64, error) {
	return s.bonusHistoryFn(ctx, userID, page, limit)
}

func (s *stubUsers) List(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	return s.listFn(ctx, page, limit)
}

type stubMenu struct {
	menuFn func(ctx context.Context) ([]domain.Category, error)
}

func (s *stubMenu) Menu(ctx context.Context) ([]domain.Category, error) {
	return s.menuFn(ctx)
}

type stubPromos struct {
	createFn    func(ctx context.Context, code string, discountType domain.DiscountType, value decimal.Decimal, validUntil *time.Time) (*domain.PromoCode, error)
	listFn      func(ctx context.Context) ([]*domain.PromoCode, error)
	setActiveFn func(ctx context.Context, id int64, active bool) (*domain.PromoCode, error)
}

func (s *stubPromos) Create(ctx context.Context, code string, discountType domain.DiscountType, value decimal.Decimal, validUntil *time.Time) (*domain.PromoCode, error) {
	return s.createFn(ctx, code, discountType, value, validUntil)
}

func (s *stubPromos) List(ctx context.Context) ([]*domain.PromoCode, error) {
	return s.listFn(ctx)
}

func (s *stubPromos) SetActive(ctx context.Context, id int64, active bool) (*domain.PromoCode, error) {
	return s.setActiveFn(ctx, id, active)
}

type stubNotifier struct {
	statusChanges int
	newOrders     int
}

func (s *stubNotifier) NotifyStatusChange(user *domain.User, order *domain.Order) {
	s.statusChanges++
}

func (s *stubNotifier) LogNewOrder(user *domain.User, order *domain.Order) {
	s.newOrders++
}

func testUser() *domain.User {
	return &domain.User{
		ID:           1,
		TelegramID:   "123456",
		FirstName:    "Иван",
		TotalBonuses: decimal.NewFromInt(300),
	}
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:          10,
		UserID:      1,
		OrderNumber: 1001,
		Items: []domain.OrderItem{
			{ID: 1, Title: "Цезарь", Price: decimal.NewFromInt(500), Quantity: 2},
		},
		TotalAmount:    decimal.NewFromInt(900),
		DiscountAmount: decimal.NewFromInt(100),
		BonusesUsed:    decimal.Zero,
		BonusesEarned:  decimal.NewFromInt(90),
		DeliveryType:   domain.DeliveryOnBoard,
		Status:         domain.OrderStatusPending,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func authRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	return req.WithContext(middleware.WithUser(req.Context(), testUser()))
}

func TestCreateOrder(t *testing.T) {
	body := createOrderRequest{
		Items: []orderItemRequest{
			{ID: 1, Title: "Цезарь", Price: decimal.NewFromInt(500), Quantity: 2},
		},
		DeliveryType: "ON_BOARD",
	}

	tests := []struct {
		name       string
		createErr  error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "invalid items", createErr: domain.ErrInvalidItems, wantStatus: http.StatusBadRequest},
		{name: "invalid delivery type", createErr: domain.ErrInvalidDeliveryType, wantStatus: http.StatusBadRequest},
		{name: "negative bonus request", createErr: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
		{name: "user missing", createErr: domain.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "insufficient bonuses", createErr: domain.ErrInsufficientBonuses, wantStatus: http.StatusConflict},
		{name: "storage failure", createErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &stubNotifier{}
			h := New(Deps{
				Orders: &stubOrders{
					createFn: func(ctx context.Context, in service.CreateOrderInput) (*domain.Order, error) {
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						return testOrder(), nil
					},
				},
				Notifier: notifier,
			})

			rec := httptest.NewRecorder()
			h.CreateOrder(rec, authRequest(t, http.MethodPost, "/api/orders", body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var resp createOrderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(1001), resp.OrderNumber)
				assert.True(t, decimal.NewFromInt(900).Equal(resp.TotalAmount))
				assert.Equal(t, 1, notifier.newOrders)
			} else {
				assert.Zero(t, notifier.newOrders)
			}
		})
	}
}

func TestCreateOrderRejectsBadIdempotencyKey(t *testing.T) {
	h := New(Deps{Notifier: &stubNotifier{}})

	body := createOrderRequest{
		Items:          []orderItemRequest{{ID: 1, Price: decimal.NewFromInt(100), Quantity: 1}},
		DeliveryType:   "TAKEAWAY",
		IdempotencyKey: "not-a-uuid",
	}

	rec := httptest.NewRecorder()
	h.CreateOrder(rec, authRequest(t, http.MethodPost, "/api/orders", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderUnauthorized(t *testing.T) {
	h := New(Deps{Notifier: &stubNotifier{}})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListOrders(t *testing.T) {
	h := New(Deps{
		Orders: &stubOrders{
			listByUserFn: func(ctx context.Context, userID int64) ([]*domain.Order, error) {
				assert.Equal(t, int64(1), userID)
				return []*domain.Order{testOrder()}, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.ListOrders(rec, authRequest(t, http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(1001), resp[0].OrderNumber)
	assert.Equal(t, "2025-03-01T12:00:00Z", resp[0].CreatedAt)
}

func TestProfile(t *testing.T) {
	h := New(Deps{})

	rec := httptest.NewRecorder()
	h.Profile(rec, authRequest(t, http.MethodGet, "/api/user/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp profileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Иван", resp.FirstName)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.TotalBonuses))
}

func TestBonusHistory(t *testing.T) {
	orderID := int64(10)
	h := New(Deps{
		Users: &stubUsers{
			bonusHistoryFn: func(ctx context.Context, userID int64, page, limit int) ([]*domain.BonusEntry, int64, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return []*domain.BonusEntry{
					{
						ID:            7,
						UserID:        userID,
						Amount:        decimal.NewFromInt(90),
						Type:          domain.BonusEarned,
						OrderID:       &orderID,
						BalanceBefore: decimal.NewFromInt(300),
						BalanceAfter:  decimal.NewFromInt(390),
						CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
					},
				}, 11, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.BonusHistory(rec, authRequest(t, http.MethodGet, "/api/user/bonus-history?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp bonusHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.BonusHistory, 1)
	assert.Equal(t, "EARNED", resp.BonusHistory[0].Type)
	assert.True(t, decimal.NewFromInt(390).Equal(resp.BonusHistory[0].BalanceAfter))
}

func TestMenu(t *testing.T) {
	h := New(Deps{
		Menu: &stubMenu{
			menuFn: func(ctx context.Context) ([]domain.Category, error) {
				return []domain.Category{
					{ID: 1, Title: "Салаты", Items: []domain.MenuItem{
						{ID: 1, Title: "Цезарь", Price: decimal.NewFromInt(500)},
					}},
				}, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.Menu(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Items, 1)
	assert.Equal(t, "Цезарь", resp[0].Items[0].Title)
}

func adminRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Put("/api/admin/orders/{id}/status", h.AdminUpdateOrderStatus)
	r.Put("/api/admin/promo-codes/{id}/active", h.AdminSetPromoActive)
	return r
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		updateErr     error
		wantStatus    int
		wantNotifies  int
	}{
		{name: "success", wantStatus: http.StatusOK, wantNotifies: 1},
		{name: "order missing", updateErr: domain.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "illegal transition", updateErr: domain.ErrInvalidStatusTransition, wantStatus: http.StatusConflict},
		{name: "storage failure", updateErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &stubNotifier{}
			h := New(Deps{
				Orders: &stubOrders{
					updateStatusFn: func(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
						assert.Equal(t, int64(10), orderID)
						assert.Equal(t, domain.OrderStatusConfirmed, next)
						if tt.updateErr != nil {
							return nil, tt.updateErr
						}
						order := testOrder()
						order.Status = next
						return order, nil
					},
				},
				Users: &stubUsers{
					getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
						return testUser(), nil
					},
				},
				Notifier: notifier,
			})

			var buf bytes.Buffer
			require.NoError(t, json.NewEncoder(&buf).Encode(updateStatusRequest{Status: "CONFIRMED"}))
			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/10/status", &buf)
			rec := httptest.NewRecorder()
			adminRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNotifies, notifier.statusChanges)
			if tt.wantStatus == http.StatusOK {
				var resp orderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "CONFIRMED", resp.Status)
			}
		})
	}
}

func TestAdminCreatePromo(t *testing.T) {
	tests := []struct {
		name       string
		createErr  error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "duplicate code", createErr: domain.ErrPromoExists, wantStatus: http.StatusConflict},
		{name: "invalid parameters", createErr: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(Deps{
				Promos: &stubPromos{
					createFn: func(ctx context.Context, code string, discountType domain.DiscountType, value decimal.Decimal, validUntil *time.Time) (*domain.PromoCode, error) {
						if tt.createErr != nil {
							return nil, tt.createErr
						}
						return &domain.PromoCode{
							ID:            3,
							Code:          code,
							DiscountType:  discountType,
							DiscountValue: value,
							IsActive:      true,
						}, nil
					},
				},
			})

			body := createPromoRequest{
				Code:          "LUNCH20",
				DiscountType:  "PERCENTAGE",
				DiscountValue: decimal.NewFromInt(20),
			}
			var buf bytes.Buffer
			require.NoError(t, json.NewEncoder(&buf).Encode(body))

			rec := httptest.NewRecorder()
			h.AdminCreatePromo(rec, httptest.NewRequest(http.MethodPost, "/api/admin/promo-codes", &buf))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp promoResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "LUNCH20", resp.Code)
				assert.True(t, resp.IsActive)
			}
		})
	}
}

func TestAdminSetPromoActive(t *testing.T) {
	h := New(Deps{
		Promos: &stubPromos{
			setActiveFn: func(ctx context.Context, id int64, active bool) (*domain.PromoCode, error) {
				assert.Equal(t, int64(3), id)
				assert.False(t, active)
				return &domain.PromoCode{ID: 3, Code: "LUNCH20", IsActive: false}, nil
			},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(setPromoActiveRequest{IsActive: false}))
	req := httptest.NewRequest(http.MethodPut, "/api/admin/promo-codes/3/active", &buf)
	rec := httptest.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp promoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestAdminListOrders(t *testing.T) {
	h := New(Deps{
		Orders: &stubOrders{
			listFn: func(ctx context.Context, page, limit int) ([]*domain.Order, int64, error) {
				return []*domain.Order{testOrder()}, 42, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.AdminListOrders(rec, httptest.NewRequest(http.MethodGet, "/api/admin/orders?page=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp adminOrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Total)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "PENDING", resp.Orders[0].Status)
}

func TestHealth(t *testing.T) {
	h := New(Deps{})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
