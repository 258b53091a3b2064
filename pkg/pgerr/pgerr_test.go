package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	pqErr := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}
	pgxErr := &pgconn.PgError{Code: "40001"}

	assert.Equal(t, CodeExclusionViolation, Code(fmt.Errorf("insert: %w", pqErr)))
	assert.Equal(t, CodeSerializationFailure, Code(pgxErr))
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))

	assert.Equal(t, "bookings_no_overlap", Constraint(pqErr))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsExclusionViolation(&pq.Error{Code: "23P01"}))
	assert.True(t, IsExclusionViolation(&pgconn.PgError{Code: "23P01"}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsInvalidTextRepresentation(&pq.Error{Code: "22P02"}))
	assert.True(t, IsInvalidTextRepresentation(fmt.Errorf("scan: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, IsInvalidTextRepresentation(nil))

	assert.True(t, IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsRetryable(&pq.Error{Code: "23505"}))
}
