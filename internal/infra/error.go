package infra

import (
	"errors"
	"log/slog"

	"stelwing-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its PostgreSQL code unless kind is given explicitly.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindRetryable          RepositoryErrorKind = "RETRYABLE"
)

const (
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

// IsRetryablePgError reports contention failures that succeed when the whole
// transaction is run again.
func IsRetryablePgError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

func classify(err error) (RepositoryErrorKind, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return KindRetryable, ""
	default:
		return KindDBFailure, ""
	}
}
