package repository

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// handlePostgreSQLError converts pgx/PostgreSQL errors to the AppError taxonomy.
// write selects the code for engine rejections that are not connectivity related.
func handlePostgreSQLError(err error, operation string, write bool) error {
	if err == nil {
		return nil
	}

	if isUnavailable(err) {
		return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, operation)
	}

	// Check if it's a PostgreSQL error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Driver-level failure without a SQLSTATE, e.g. a broken connection
		return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, operation)
	}

	switch pgErr.Code {
	case "23505": // UNIQUE_VIOLATION
		return handleUniqueViolation(pgErr, operation)

	case "23503": // FOREIGN_KEY_VIOLATION
		return handleForeignKeyViolation(pgErr, operation)

	case "23502": // NOT_NULL_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeWriteFailed, operation+": required field is missing")

	case "23514": // CHECK_VIOLATION
		return apperrors.Wrap(err, apperrors.CodeWriteFailed, operation+": data violates check constraint")

	case "42P01": // UNDEFINED_TABLE
		return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, operation+": database schema error: table not found")

	case "42703": // UNDEFINED_COLUMN
		return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, operation+": database schema error: column not found")
	}

	message := operation + " (PostgreSQL code: " + pgErr.Code + ")"
	if write {
		return apperrors.Wrap(err, apperrors.CodeWriteFailed, message)
	}
	return apperrors.Wrap(err, apperrors.CodeStorageUnavailable, message)
}

// isUnavailable reports connectivity, timeout and cancellation failures
func isUnavailable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch {
	case strings.HasPrefix(pgErr.Code, "08"): // CONNECTION_EXCEPTION class
		return true
	case pgErr.Code == "53300": // TOO_MANY_CONNECTIONS
		return true
	case pgErr.Code == "57014": // QUERY_CANCELED
		return true
	case pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03": // admin/crash shutdown, cannot connect now
		return true
	}
	return false
}

// handleUniqueViolation provides specific error messages for different unique constraints
func handleUniqueViolation(pgErr *pgconn.PgError, operation string) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.HasPrefix(constraintName, "channels"):
		if strings.Contains(constraintName, "pkey") {
			return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, "channel with this ID already exists")
		}
		return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, "channel with this channel_id already exists")

	case strings.HasPrefix(constraintName, "videos"):
		if strings.Contains(constraintName, "pkey") {
			return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, "video with this ID already exists")
		}
		return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, "video with this video_id already exists")

	default:
		return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, operation+": resource already exists")
	}
}

// handleForeignKeyViolation provides specific error messages for foreign key constraints
func handleForeignKeyViolation(pgErr *pgconn.PgError, operation string) *apperrors.AppError {
	if strings.Contains(pgErr.ConstraintName, "channel_id") {
		return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, "referenced channel does not exist")
	}
	return apperrors.Wrap(pgErr, apperrors.CodeWriteFailed, operation+": referenced resource does not exist")
}
