package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

func createQueryError(table string, err error) error {
	return fmt.Errorf("failed to create query on %s: %w", table, err)
}

// executeQueryError keeps the server's error code visible in the message.
func executeQueryError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("failed to execute query on %s (sqlstate %s): %w", table, pgErr.Code, err)
	}

	return fmt.Errorf("failed to execute query on %s: %w", table, err)
}

func scanRowError(table string, err error) error {
	return fmt.Errorf("failed to scan %s row: %w", table, err)
}

func collectRowsError(table string, err error) error {
	return fmt.Errorf("failed to collect %s rows: %w", table, err)
}

func copyRowsError(table string, err error) error {
	return fmt.Errorf("failed to copy rows into %s: %w", table, err)
}
