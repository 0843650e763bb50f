package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store is the income ledger. Methods accept context.Context for
// cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// AddIncome credits amount to the user's bucket for the given day and
	// returns the updated day total. The credit is a single transactional
	// upsert, so concurrent credits cannot lose updates.
	AddIncome(ctx context.Context, userID int64, day string, amount int) (int, error)

	// IncomeForDay returns the user's total for the given day, or 0 when no
	// income was recorded.
	IncomeForDay(ctx context.Context, userID int64, day string) (int, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store implementation backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) AddIncome(ctx context.Context, userID int64, day string, amount int) (int, error) {
	if userID == 0 {
		return 0, fmt.Errorf("income credit requires a non-zero user id")
	}
	if day == "" {
		return 0, fmt.Errorf("income credit requires a day key")
	}
	if amount <= 0 {
		return 0, fmt.Errorf("income credit amount must be positive, got %d", amount)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for income credit", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			s.logger.WarnContext(ctx, "Error rolling back income credit transaction", "error", rollbackErr)
		}
	}()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
        INSERT INTO income (user_id, day, amount, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (user_id, day) DO UPDATE SET
            amount     = amount + excluded.amount,
            updated_at = excluded.updated_at;`,
		userID, day, amount, now, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to credit income", "user_id", userID, "day", day, "amount", amount, "error", err)
		return 0, fmt.Errorf("failed to credit income (user %d, day %s): %w", userID, day, err)
	}

	var total int
	if err := tx.GetContext(ctx, &total,
		`SELECT amount FROM income WHERE user_id = ? AND day = ?;`, userID, day); err != nil {
		return 0, fmt.Errorf("failed to read day total after credit (user %d, day %s): %w", userID, day, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit income credit: %w", err)
	}

	s.logger.DebugContext(ctx, "Income credited", "user_id", userID, "day", day, "amount", amount, "total", total)
	return total, nil
}

func (s *sqlxStore) IncomeForDay(ctx context.Context, userID int64, day string) (int, error) {
	var entry IncomeEntry
	err := s.db.GetContext(ctx, &entry,
		`SELECT id, user_id, day, amount, created_at, updated_at FROM income WHERE user_id = ? AND day = ?;`, userID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read income (user %d, day %s): %w", userID, day, err)
	}
	return entry.Amount, nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	// VACUUM cannot run inside a transaction.
	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE;"); err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	s.logger.InfoContext(ctx, "Database maintenance completed")
	return nil
}
