// Package database_test tests the income ledger store against an in-memory
// SQLite database.
package database_test

import (
	"context"
	"testing"

	"github.com/dkazak/courierbot/internal/database"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func TestAddIncomeAccumulates(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	const userID = int64(42)
	const day = "2025-06-01"

	credits := []struct {
		amount    int
		wantTotal int
	}{
		{amount: 10, wantTotal: 10},
		{amount: 15, wantTotal: 25},
		{amount: 91, wantTotal: 116},
	}

	for _, c := range credits {
		total, err := store.AddIncome(ctx, userID, day, c.amount)
		if err != nil {
			t.Fatalf("AddIncome(%d) failed: %v", c.amount, err)
		}
		if total != c.wantTotal {
			t.Errorf("AddIncome(%d) total = %d, want %d", c.amount, total, c.wantTotal)
		}
	}

	got, err := store.IncomeForDay(ctx, userID, day)
	if err != nil {
		t.Fatalf("IncomeForDay failed: %v", err)
	}
	if got != 116 {
		t.Errorf("IncomeForDay = %d, want 116", got)
	}
}

func TestIncomeIsolatedByDayAndUser(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.AddIncome(ctx, 1, "2025-06-01", 10); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}
	if _, err := store.AddIncome(ctx, 1, "2025-06-02", 23); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}
	if _, err := store.AddIncome(ctx, 2, "2025-06-01", 15); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}

	tests := []struct {
		name   string
		userID int64
		day    string
		want   int
	}{
		{name: "first user first day", userID: 1, day: "2025-06-01", want: 10},
		{name: "first user second day", userID: 1, day: "2025-06-02", want: 23},
		{name: "second user", userID: 2, day: "2025-06-01", want: 15},
		{name: "user with no credits", userID: 3, day: "2025-06-01", want: 0},
		{name: "day with no credits", userID: 1, day: "2025-06-03", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.IncomeForDay(ctx, tc.userID, tc.day)
			if err != nil {
				t.Fatalf("IncomeForDay failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("IncomeForDay(user=%d, day=%s) = %d, want %d", tc.userID, tc.day, got, tc.want)
			}
		})
	}
}

func TestAddIncomeRejectsBadInput(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.AddIncome(ctx, 1, "2025-06-01", 0); err == nil {
		t.Error("AddIncome with zero amount should fail")
	}
	if _, err := store.AddIncome(ctx, 1, "2025-06-01", -5); err == nil {
		t.Error("AddIncome with negative amount should fail")
	}
	if _, err := store.AddIncome(ctx, 0, "2025-06-01", 10); err == nil {
		t.Error("AddIncome with zero user id should fail")
	}
	if _, err := store.AddIncome(ctx, 1, "", 10); err == nil {
		t.Error("AddIncome with empty day should fail")
	}

	// Failed credits must leave the ledger untouched.
	got, err := store.IncomeForDay(ctx, 1, "2025-06-01")
	if err != nil {
		t.Fatalf("IncomeForDay failed: %v", err)
	}
	if got != 0 {
		t.Errorf("IncomeForDay = %d after rejected credits, want 0", got)
	}
}

func TestRunSQLMaintenance(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.AddIncome(ctx, 1, "2025-06-01", 10); err != nil {
		t.Fatalf("AddIncome failed: %v", err)
	}

	if err := store.RunSQLMaintenance(ctx); err != nil {
		t.Fatalf("RunSQLMaintenance failed: %v", err)
	}

	// Maintenance never evicts ledger rows.
	got, err := store.IncomeForDay(ctx, 1, "2025-06-01")
	if err != nil {
		t.Fatalf("IncomeForDay failed: %v", err)
	}
	if got != 10 {
		t.Errorf("IncomeForDay = %d after maintenance, want 10", got)
	}
}
