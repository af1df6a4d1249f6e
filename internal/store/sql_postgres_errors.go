package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller what to do with a failed statement.
// Statements are never retried, so only conflicts are told apart.
type ErrorClassification int

const (
	// Unclassified is the default for anything not recognised below.
	Unclassified ErrorClassification = iota

	// Conflict is a unique violation: a duplicate email or username. The
	// same input will fail again.
	Conflict
)

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Unclassified
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to a classification. 23505 is a
// conflict. A row-level security rejection (42501) stays unclassified like
// every other code.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr.Code == pgerrcode.UniqueViolation {
		return Conflict
	}
	return Unclassified
}
