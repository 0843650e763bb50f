// Package config_test tests the allowed-context lookup.
package config_test

import (
	"testing"

	"github.com/dkazak/courierbot/internal/config"
)

func TestIsContextAllowed(t *testing.T) {
	t.Parallel()

	cfg := config.TelegramConfig{
		Token: "test-token",
		AllowedContexts: []config.ChatThread{
			{ChatID: -1002079167705, ThreadID: 7340},
			{ChatID: -1002387655137, ThreadID: 9},
			{ChatID: -1002423500927, ThreadID: 0},
		},
	}

	tests := []struct {
		name     string
		chatID   int64
		threadID int
		want     bool
	}{
		{name: "listed chat and thread", chatID: -1002079167705, threadID: 7340, want: true},
		{name: "listed chat wrong thread", chatID: -1002079167705, threadID: 9, want: false},
		{name: "listed chat default thread", chatID: -1002423500927, threadID: 0, want: true},
		{name: "unlisted chat", chatID: -100555, threadID: 7340, want: false},
		{name: "zero chat", chatID: 0, threadID: 0, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := cfg.IsContextAllowed(tc.chatID, tc.threadID); got != tc.want {
				t.Errorf("IsContextAllowed(%d, %d) = %v, want %v", tc.chatID, tc.threadID, got, tc.want)
			}
		})
	}
}
