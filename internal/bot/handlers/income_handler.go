package handlers

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dkazak/courierbot/internal/database"
)

type incomeHandler struct {
	deps HandlerDeps
}

// NewIncomeHandler returns the handler for the /доход command, which replies
// with the caller's income total for the current day.
func NewIncomeHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return incomeHandler{deps}.Handle
}

func (h incomeHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "income_total")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Income command received update with nil message or sender", "update_id", update.ID)
		return
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	total, err := h.deps.Store.IncomeForDay(dbCtx, msg.From.ID, database.DayKey(time.Now()))
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to read today's income", "error", err, "user_id", msg.From.ID)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()
	if _, err := b.SendMessage(sendCtx, &tgbot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		MessageThreadID: msg.MessageThreadID,
		Text:            fmt.Sprintf(h.deps.Config.Messages.IncomeToday, total),
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send income total", "error", err, "chat_id", msg.Chat.ID)
	}
}
