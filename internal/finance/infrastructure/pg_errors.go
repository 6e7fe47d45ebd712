package infrastructure

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, the store's answer to a race between two equal creates.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
