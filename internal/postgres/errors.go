package postgres

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// Postgres error codes the application reacts to
const (
	CodeUndefinedTable      = "42P01"
	CodeUndefinedColumn     = "42703"
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"
	CodeSerializationFail   = "40001"
	CodeDeadlockDetected    = "40P01"
	CodeTooManyConnections  = "53300"
	CodeAdminShutdown       = "57P01"
	CodeCannotConnectNow    = "57P03"
)

// PQCode extracts the SQLSTATE from err, empty when err is not a postgres error
func PQCode(err error) string {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUndefinedTable reports whether err was caused by a missing relation
func IsUndefinedTable(err error) bool {
	return PQCode(err) == CodeUndefinedTable
}

// IsUniqueViolation reports whether err was caused by a unique constraint
func IsUniqueViolation(err error) bool {
	return PQCode(err) == CodeUniqueViolation
}

// WrapError classifies a database error into the application error taxonomy.
// entity names the record kind for hints, e.g. "process" or "invoice".
func WrapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if err == sql.ErrNoRows {
		return ierr.WithError(err).
			WithHintf("%s not found", capitalize(entity)).
			Mark(ierr.ErrNotFound)
	}

	var pqErr *pq.Error
	if !ierr.As(err, &pqErr) {
		return ierr.WithError(err).
			WithHintf("Database operation on %s failed", entity).
			Mark(ierr.ErrDatabase)
	}

	details := map[string]any{
		"db_code":    string(pqErr.Code),
		"db_message": pqErr.Message,
	}
	if pqErr.Table != "" {
		details["table"] = pqErr.Table
	}
	if pqErr.Constraint != "" {
		details["constraint"] = pqErr.Constraint
	}

	switch string(pqErr.Code) {
	case CodeUndefinedTable:
		return ierr.WithError(err).
			WithHintf("Database schema is missing the %s table", entity).
			WithHint("Run the database migrations and try again").
			WithReportableDetails(details).
			Mark(ierr.ErrDatabase)
	case CodeUndefinedColumn:
		return ierr.WithError(err).
			WithHint("Database schema is out of date").
			WithHint("Run the database migrations and try again").
			WithReportableDetails(details).
			Mark(ierr.ErrDatabase)
	case CodeUniqueViolation:
		return ierr.WithError(err).
			WithHintf("A %s with the same identifier already exists", entity).
			WithReportableDetails(details).
			Mark(ierr.ErrAlreadyExists)
	case CodeForeignKeyViolation:
		return ierr.WithError(err).
			WithHintf("The %s references a record that does not exist", entity).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	case CodeNotNullViolation, CodeCheckViolation:
		if pqErr.Column != "" {
			details["column"] = pqErr.Column
		}
		return ierr.WithError(err).
			WithHintf("The %s has an invalid or missing value", entity).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	default:
		return ierr.WithError(err).
			WithHint(fmt.Sprintf("Database operation on %s failed: %s", entity, pqErr.Message)).
			WithReportableDetails(details).
			Mark(ierr.ErrDatabase)
	}
}

func capitalize(s string) string {
	if s == "" {
		return "Record"
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
