package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateGeneration reports that a generation-log row for the same
	// (template_id, generated_date) already exists. It is an expected
	// outcome of concurrent generation runs, not a failure.
	ErrDuplicateGeneration = errors.New("generation log entry already exists")
)

// isUniqueViolation recognizes a unique-index conflict on both backends:
// Postgres reports SQLSTATE 23505 through pgconn, SQLite only gives us the
// driver's message text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
