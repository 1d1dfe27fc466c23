package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert hits a unique index.
var ErrDuplicate = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// IsDuplicate reports whether err is a unique-constraint violation from any supported driver.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	// sqlite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func translate(err error) error {
	if IsDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// notFoundAsNil maps gorm.ErrRecordNotFound to a nil error so lookups return (nil, nil).
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
