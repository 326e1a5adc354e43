package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// HTTP server
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`

	// Mini-app frontend URL, used for the bot's web-app button
	WebAppURL string `env:"WEBAPP_URL,required"`

	// Admin
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	// Bot webhook; empty means long polling
	WebhookURL string `env:"BOT_WEBHOOK_URL"`

	// Telegram chat that receives order event notifications (0 disables)
	OrderLogChatID int64 `env:"ORDER_LOG_CHAT_ID"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
