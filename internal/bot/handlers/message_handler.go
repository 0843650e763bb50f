package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dkazak/courierbot/internal/config"
	"github.com/dkazak/courierbot/internal/database"
	"github.com/dkazak/courierbot/internal/order"
	"github.com/dkazak/courierbot/internal/pricing"
)

type messageHandler struct {
	deps HandlerDeps
}

// NewMessageHandler creates the default handler routing each group message
// to the income-logging path or the order intake path.
func NewMessageHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return messageHandler{deps}.Handle
}

func (h messageHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.Text == "" || msg.From == nil {
		log.DebugContext(ctx, "Ignoring update with nil message, empty text, or nil sender", "update_id", update.ID)
		return
	}

	if pricing.IsAdjustment(msg.Text) {
		h.handleIncome(ctx, b, msg)
		return
	}
	h.handleOrder(ctx, b, msg)
}

// handleIncome credits the sender for a +/- adjustment message. A message
// matching no price rule is dropped without a reply, and the confirmation
// direct message is best-effort: the sender may never have opened a private
// chat with the bot, and the credit stands either way.
func (h messageHandler) handleIncome(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "income")

	amount := pricing.Classify(msg.Text)
	if amount == 0 {
		log.DebugContext(ctx, "Adjustment message matched no price rule, dropping", "chat_id", msg.Chat.ID)
		return
	}

	userID := msg.From.ID
	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	total, err := h.deps.Store.AddIncome(dbCtx, userID, database.DayKey(time.Now()), amount)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to credit income", "error", err, "user_id", userID, "amount", amount)
		return
	}
	log.InfoContext(ctx, "Credited income", "user_id", userID, "amount", amount, "total", total)

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()
	if _, err := b.SendMessage(sendCtx, &tgbot.SendMessageParams{
		ChatID: userID,
		Text:   fmt.Sprintf(h.deps.Config.Messages.IncomeCredited, amount, total),
	}); err != nil {
		log.DebugContext(ctx, "Income direct message not delivered", "error", err, "user_id", userID)
	}
}

// handleOrder runs the order intake pipeline: prompt the completion
// provider, extract the order fields, validate, and reply in the original
// context. Provider failures are logged and answered with a generic retry
// message; they never propagate.
func (h messageHandler) handleOrder(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	deps := h.deps
	log := deps.Logger.With("handler", "order")
	log.InfoContext(ctx, "Processing order message", "chat_id", msg.Chat.ID, "thread_id", msg.MessageThreadID)

	_, _ = b.SendChatAction(ctx, &tgbot.SendChatActionParams{
		ChatID:          msg.Chat.ID,
		MessageThreadID: msg.MessageThreadID,
		Action:          models.ChatActionTyping,
	})

	aiCtx, cancel := context.WithTimeout(ctx, deps.Config.Gemini.Timeout)
	completion, err := deps.GeminiClient.ExtractOrder(aiCtx, msg.Text)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Order extraction failed", "error", err, "chat_id", msg.Chat.ID)
		h.reply(ctx, b, msg, deps.Config.Messages.OrderError)
		return
	}

	outcome := order.Validate(order.Extract(completion))
	log.InfoContext(ctx, "Order validated", "chat_id", msg.Chat.ID, "status", outcome.Status, "missing", outcome.MissingFields)

	h.reply(ctx, b, msg, OrderReply(deps.Config.Messages, outcome))
}

// OrderReply renders the user-facing reply for a validation outcome.
func OrderReply(msgs config.MessagesConfig, outcome order.Outcome) string {
	switch outcome.Status {
	case order.StatusInvalidPhone:
		return msgs.OrderBadPhone
	case order.StatusMissingFields:
		return fmt.Sprintf(msgs.OrderMissingData, strings.Join(outcome.MissingFields, ", "))
	default:
		return fmt.Sprintf(msgs.OrderAccepted, outcome.Formatted)
	}
}

func (h messageHandler) reply(ctx context.Context, b *tgbot.Bot, msg *models.Message, text string) {
	log := h.deps.Logger.With("handler", "order")

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()
	if _, err := b.SendMessage(sendCtx, &tgbot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		MessageThreadID: msg.MessageThreadID,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
		Text:            text,
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", msg.Chat.ID)
	}
}
