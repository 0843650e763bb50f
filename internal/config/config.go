// Package config manages application configuration loaded from config.yaml,
// BOT_-prefixed environment variables, and default values.
package config

import (
	"time"
)

// Config defines the application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// ChatThread identifies one permitted (chat, thread) pair. A thread id of 0
// matches messages outside forum topics.
type ChatThread struct {
	ChatID   int64 `mapstructure:"chat_id" validate:"required"`
	ThreadID int   `mapstructure:"thread_id"`
}

// TelegramConfig holds the bot token and the static set of contexts the bot
// is permitted to act in.
type TelegramConfig struct {
	Token           string       `mapstructure:"token" validate:"required"`
	AllowedContexts []ChatThread `mapstructure:"allowed_contexts" validate:"required,min=1,dive"`
}

// IsContextAllowed reports whether the bot may process messages in the given
// chat and thread. Absence of the pair is a normal ignore outcome, not an
// error.
func (c TelegramConfig) IsContextAllowed(chatID int64, threadID int) bool {
	for _, allowed := range c.AllowedContexts {
		if allowed.ChatID == chatID && allowed.ThreadID == threadID {
			return true
		}
	}
	return false
}

// GeminiConfig holds the completion-provider settings. Instruction is the
// extraction prompt template; {text} is replaced with the raw order message.
type GeminiConfig struct {
	APIKey            string        `mapstructure:"api_key" validate:"required"`
	ModelName         string        `mapstructure:"model" validate:"required"`
	Temperature       float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	Instruction       string        `mapstructure:"instruction" validate:"required,contains={text}"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"min=1s,max=10m"`
	MaxRetries        int           `mapstructure:"max_retries" validate:"min=0,max=10"`
	RetryDelaySeconds int           `mapstructure:"retry_delay_seconds" validate:"min=0"`
}

// DatabaseConfig points at the SQLite database backing the income ledger.
// The default ":memory:" keeps the ledger process-local; a file path makes
// it survive restarts.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TaskConfig enables one scheduled task and sets its cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// MessagesConfig holds every user-facing reply text. The income and order
// texts are fmt format strings; see defaults.go for the expected verbs.
type MessagesConfig struct {
	IncomeCredited   string `mapstructure:"income_credited" validate:"required"`
	IncomeToday      string `mapstructure:"income_today" validate:"required"`
	OrderAccepted    string `mapstructure:"order_accepted" validate:"required"`
	OrderMissingData string `mapstructure:"order_missing_data" validate:"required"`
	OrderBadPhone    string `mapstructure:"order_bad_phone" validate:"required"`
	OrderError       string `mapstructure:"order_error" validate:"required"`
}
