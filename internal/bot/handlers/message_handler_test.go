package handlers

import (
	"strings"
	"testing"

	"github.com/dkazak/courierbot/internal/config"
	"github.com/dkazak/courierbot/internal/order"
)

func testMessages() config.MessagesConfig {
	return config.MessagesConfig{
		IncomeCredited:   config.DefaultMsgIncomeCredited,
		IncomeToday:      config.DefaultMsgIncomeToday,
		OrderAccepted:    config.DefaultMsgOrderAccepted,
		OrderMissingData: config.DefaultMsgOrderMissing,
		OrderBadPhone:    config.DefaultMsgOrderBadPhone,
		OrderError:       config.DefaultMsgOrderError,
	}
}

func TestOrderReply(t *testing.T) {
	t.Parallel()

	msgs := testMessages()

	t.Run("accepted outcome embeds the formatted order", func(t *testing.T) {
		t.Parallel()
		outcome := order.Validate(order.Order{
			Interval: "с 14:00 до 16:00",
			Address:  "ул. Ленина 5",
			Phone:    "+375291234567",
		})
		got := OrderReply(msgs, outcome)
		if !strings.HasPrefix(got, "✅") {
			t.Errorf("accepted reply should start with the acceptance marker, got %q", got)
		}
		if !strings.Contains(got, "ул. Ленина 5") {
			t.Errorf("accepted reply should contain the address, got %q", got)
		}
		if !strings.Contains(got, "Комментарий заказчика: —") {
			t.Errorf("accepted reply should render a dash for the absent comment, got %q", got)
		}
	})

	t.Run("missing fields are joined into the rejection", func(t *testing.T) {
		t.Parallel()
		outcome := order.Validate(order.Order{Address: "ул. Ленина 5"})
		got := OrderReply(msgs, outcome)
		if !strings.Contains(got, "временной интервал, номер телефона") {
			t.Errorf("missing-fields reply should list the missing fields, got %q", got)
		}
		if strings.Contains(got, "адрес") {
			t.Errorf("missing-fields reply should not list the valid address, got %q", got)
		}
	})

	t.Run("invalid phone uses the region rejection", func(t *testing.T) {
		t.Parallel()
		outcome := order.Validate(order.Order{Interval: "к 12:00", Address: "ул. Ленина 5", Phone: "12345"})
		got := OrderReply(msgs, outcome)
		if got != msgs.OrderBadPhone {
			t.Errorf("invalid-phone reply = %q, want the region rejection text", got)
		}
	})
}
