// Package handlers contains the Telegram message dispatcher, the income
// command handler, and their registration logic and middleware.
package handlers

import (
	"log/slog"
	"time"

	"github.com/dkazak/courierbot/internal/config"
	"github.com/dkazak/courierbot/internal/database"
	"github.com/dkazak/courierbot/internal/gemini"
)

// HandlerDeps provides dependencies for Telegram handlers.
type HandlerDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Store        database.Store
	GeminiClient gemini.Client
}

const (
	sendMessageTimeout = 10 * time.Second
	dbOperationTimeout = 5 * time.Second
)
