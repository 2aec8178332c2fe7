package repository

import (
	"errors"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// isUniqueViolation recognises duplicate keys from both the postgres driver
// and gorm's translated errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// classify turns a gorm error into an application error. notFound is used
// when the record does not exist.
func classify(err error, notFound error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isUniqueViolation(err):
		return apperror.Validation("%s: record already exists", op)
	}
	return apperror.Storage(err, op)
}
