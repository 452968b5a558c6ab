package postgres

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		marker error
		status int
	}{
		{"no rows", sql.ErrNoRows, ierr.ErrNotFound, http.StatusNotFound},
		{"undefined table", &pq.Error{Code: CodeUndefinedTable}, ierr.ErrDatabase, http.StatusInternalServerError},
		{"undefined column", &pq.Error{Code: CodeUndefinedColumn}, ierr.ErrDatabase, http.StatusInternalServerError},
		{"unique", &pq.Error{Code: CodeUniqueViolation}, ierr.ErrAlreadyExists, http.StatusConflict},
		{"foreign key", &pq.Error{Code: CodeForeignKeyViolation}, ierr.ErrValidation, http.StatusBadRequest},
		{"other pq", &pq.Error{Code: "XX000", Message: "internal"}, ierr.ErrDatabase, http.StatusInternalServerError},
		{"plain", errors.New("connection reset"), ierr.ErrDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(tt.err, "process")
			assert.True(t, ierr.Is(err, tt.marker))
			assert.Equal(t, tt.status, ierr.HTTPStatusFromErr(err))
		})
	}

	assert.NoError(t, WrapError(nil, "process"))
}

func TestWrapErrorSchemaMismatchHint(t *testing.T) {
	err := WrapError(&pq.Error{Code: CodeUndefinedColumn, Message: `column "valor_total" does not exist`}, "process")
	resp := ierr.NewErrorResponse(err)
	assert.Equal(t, "Database schema is out of date", resp.Message)
	assert.Contains(t, resp.Hint, "migrations")
	assert.Equal(t, CodeUndefinedColumn, resp.Details["db_code"])
	assert.Equal(t, ierr.ErrCodeDatabase, resp.Code)
}
