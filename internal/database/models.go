package database

import "time"

// IncomeEntry is one user's accumulated income for a single calendar day.
// Rows are created lazily on the first credit for a (user, day) pair and are
// never evicted while the database lives.
type IncomeEntry struct {
	ID        uint      `db:"id"`
	UserID    int64     `db:"user_id"`
	Day       string    `db:"day"`
	Amount    int       `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
