package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/domain"
	"github.com/aerolunch/backend/internal/telegram"
)

type ctxKey string

const userKey ctxKey = "user"

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// UserUpserter persists the Telegram identity of an authenticated request.
type UserUpserter interface {
	UpsertFromTelegram(ctx context.Context, tgUser telegram.WebAppUser) (*domain.User, error)
}

// TelegramAuth validates the X-Telegram-Init-Data header, upserts the user
// record, and injects the user into the request context.
func TelegramAuth(botToken string, users UserUpserter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initData := r.Header.Get("X-Telegram-Init-Data")
			if initData == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if err := telegram.ValidateInitData(initData, botToken, config.InitDataMaxAge, time.Now()); err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			tgUser, err := telegram.ParseInitDataUser(initData)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			user, err := users.UpsertFromTelegram(r.Context(), tgUser)
			if err != nil {
				slog.Error("upsert user", "telegram_id", tgUser.ID, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser injects a user into the context. Test helper for handlers.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
