package order_test

import (
	"reflect"
	"testing"

	"github.com/dkazak/courierbot/internal/order"
)

func TestValidateAccepted(t *testing.T) {
	t.Parallel()

	o := order.Order{
		Interval: "с 14:00 до 16:00",
		Address:  "ул. Ленина 5",
		Phone:    "+375291234567",
		Comment:  "позвонить за 10 минут",
	}

	got := order.Validate(o)
	if got.Status != order.StatusAccepted {
		t.Fatalf("Validate(%+v).Status = %v, want StatusAccepted", o, got.Status)
	}

	want := "с 14:00 до 16:00\nул. Ленина 5\n+375291234567\nКомментарий заказчика: позвонить за 10 минут"
	if got.Formatted != want {
		t.Errorf("Formatted = %q, want %q", got.Formatted, want)
	}
}

func TestValidateAcceptedWithoutComment(t *testing.T) {
	t.Parallel()

	o := order.Order{
		Interval: "в ближайшее время",
		Address:  "пр. Победителей 12",
		Phone:    "80291234567",
	}

	got := order.Validate(o)
	if got.Status != order.StatusAccepted {
		t.Fatalf("Validate(%+v).Status = %v, want StatusAccepted", o, got.Status)
	}

	want := "в ближайшее время\nпр. Победителей 12\n80291234567\nКомментарий заказчика: —"
	if got.Formatted != want {
		t.Errorf("Formatted = %q, want %q", got.Formatted, want)
	}
}

func TestValidateMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		order       order.Order
		wantMissing []string
	}{
		{
			name:        "missing interval and phone with valid address",
			order:       order.Order{Address: "ул. Ленина 5"},
			wantMissing: []string{"временной интервал", "номер телефона"},
		},
		{
			name:        "address without house number is missing",
			order:       order.Order{Interval: "к 12:00", Address: "улица Ленина", Phone: "+375291234567"},
			wantMissing: []string{"адрес с номером дома"},
		},
		{
			name:        "everything missing",
			order:       order.Order{},
			wantMissing: []string{"адрес с номером дома", "временной интервал", "номер телефона"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := order.Validate(tc.order)
			if got.Status != order.StatusMissingFields {
				t.Fatalf("Validate(%+v).Status = %v, want StatusMissingFields", tc.order, got.Status)
			}
			if !reflect.DeepEqual(got.MissingFields, tc.wantMissing) {
				t.Errorf("MissingFields = %v, want %v", got.MissingFields, tc.wantMissing)
			}
		})
	}
}

func TestValidateInvalidPhoneTakesPrecedence(t *testing.T) {
	t.Parallel()

	// A present but out-of-region phone must short-circuit the
	// missing-fields report even when other fields are incomplete.
	tests := []struct {
		name  string
		order order.Order
	}{
		{
			name:  "complete order with short phone",
			order: order.Order{Interval: "к 12:00", Address: "ул. Ленина 5", Phone: "12345"},
		},
		{
			name:  "incomplete order with foreign phone",
			order: order.Order{Phone: "+79991234567"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := order.Validate(tc.order)
			if got.Status != order.StatusInvalidPhone {
				t.Fatalf("Validate(%+v).Status = %v, want StatusInvalidPhone", tc.order, got.Status)
			}
			if len(got.MissingFields) != 0 {
				t.Errorf("MissingFields = %v, want empty for invalid-phone rejection", got.MissingFields)
			}
		})
	}
}
