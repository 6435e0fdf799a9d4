package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicate            = errors.New("unique constraint violation")
	ErrForeignKey           = errors.New("foreign key violation")
	ErrInsufficientQuantity = errors.New("quantity cannot go below zero")
	ErrInvalidPage          = errors.New("offset and limit must not be negative")
)

// translatePgError maps constraint violations onto the package sentinels.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return errors.Join(ErrDuplicate, err)
		case "23503":
			return errors.Join(ErrForeignKey, err)
		}
	}
	return err
}
