package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aerolunch/backend/internal/api/handlers"
	"github.com/aerolunch/backend/internal/api/middleware"
)

// NewRouter wires the public, authenticated and admin surfaces.
func NewRouter(h *handlers.Handler, botToken, adminPassword string, users middleware.UserUpserter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover)
	r.Use(middleware.Logger)

	r.Get("/api/health", h.Health)
	r.Get("/api/menu", h.Menu)

	r.Group(func(r chi.Router) {
		r.Use(middleware.TelegramAuth(botToken, users))

		r.Post("/api/orders", h.CreateOrder)
		r.Get("/api/orders", h.ListOrders)
		r.Get("/api/user/profile", h.Profile)
		r.Put("/api/user/phone", h.UpdatePhone)
		r.Get("/api/user/bonus-history", h.BonusHistory)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(adminPassword))

		r.Get("/orders", h.AdminListOrders)
		r.Put("/orders/{id}/status", h.AdminUpdateOrderStatus)
		r.Get("/users", h.AdminListUsers)
		r.Post("/promo-codes", h.AdminCreatePromo)
		r.Get("/promo-codes", h.AdminListPromos)
		r.Put("/promo-codes/{id}/active", h.AdminSetPromoActive)
	})

	return r
}
