// Package tasks implements scheduled tasks for the bot.
package tasks

import (
	"log/slog"

	"github.com/dkazak/courierbot/internal/config"
	"github.com/dkazak/courierbot/internal/database"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
