package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AllowedContextOnly creates a middleware that drops messages arriving
// outside the configured (chat, thread) pairs. The drop is silent: outside
// contexts are a normal ignore outcome, not an error.
func AllowedContextOnly(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			msg := update.Message
			if msg == nil {
				next(ctx, b, update)
				return
			}

			if !deps.Config.Telegram.IsContextAllowed(msg.Chat.ID, msg.MessageThreadID) {
				deps.Logger.DebugContext(ctx, "Ignoring message outside allowed contexts",
					"chat_id", msg.Chat.ID, "thread_id", msg.MessageThreadID)
				return
			}

			next(ctx, b, update)
		}
	}
}
