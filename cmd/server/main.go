package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"

	backend "github.com/aerolunch/backend"
	"github.com/aerolunch/backend/internal/api"
	"github.com/aerolunch/backend/internal/api/handlers"
	botapp "github.com/aerolunch/backend/internal/bot"
	"github.com/aerolunch/backend/internal/config"
	"github.com/aerolunch/backend/internal/repository"
	"github.com/aerolunch/backend/internal/repository/sqlc"
	"github.com/aerolunch/backend/internal/service"
	"github.com/aerolunch/backend/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(backend.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize sqlc queries
	queries := sqlc.New(pool)

	// Initialize services
	userService := service.NewUserService(pool, queries)
	promoService := service.NewPromoService(pool, queries)
	orderService := service.NewOrderService(pool, queries, promoService)
	menuService := service.NewMenuService(pool, queries)

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			botapp.Recover(),
			botapp.Logging(),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	botHandler := botapp.New(botapp.Deps{
		Users:     userService,
		Orders:    orderService,
		WebAppURL: cfg.WebAppURL,
	})
	botHandler.Register(b)

	notifier := telegram.NewOrderNotifier(b, cfg.OrderLogChatID)

	// HTTP API
	h := handlers.New(handlers.Deps{
		Orders:   orderService,
		Users:    userService,
		Menu:     menuService,
		Promos:   promoService,
		Notifier: notifier,
	})
	router := api.NewRouter(h, cfg.BotToken, cfg.AdminPassword, userService)

	mux := http.NewServeMux()
	mux.Handle("/", router)

	// Webhook mode mounts the Telegram update endpoint on the same server;
	// otherwise the bot long-polls in the background.
	if cfg.WebhookURL != "" {
		if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{
			URL:                cfg.WebhookURL,
			DropPendingUpdates: cfg.DropPendingUpdates,
		}); err != nil {
			slog.Error("failed to set webhook", "error", err)
			os.Exit(1)
		}
		mux.Handle("/webhook", b.WebhookHandler())
		go b.StartWebhook(ctx)
		slog.Info("bot started in webhook mode", "url", cfg.WebhookURL)
	} else {
		go b.Start(ctx)
		slog.Info("bot started in long polling mode")
	}

	server := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      mux,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	go func() {
		slog.Info("starting http server", "address", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", "error", err)
	}

	slog.Info("server stopped gracefully")
}
