package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassThrough(t *testing.T) {
	original := NewDomainInvariant("customer not active")
	mapped := ToDomainError(original)

	assert.Equal(t, "DOMAIN_INVARIANT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.Equal(t, "customer not active", mapped.Message)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("save customer: %w", NewUnauthenticated("sign in required"))
	mapped := ToDomainError(wrapped)
	assert.Equal(t, "UNAUTHENTICATED", mapped.Code)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorUnclassified(t *testing.T) {
	mapped := ToDomainError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestPersistenceErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	err := NewPersistenceError(cause)

	mapped := ToDomainError(err)
	assert.Equal(t, "PERSISTENCE_ERROR", mapped.Code)
	assert.NotContains(t, mapped.Message, "connection refused")
	assert.True(t, errors.Is(err, cause), "cause retained for out-of-band logging")
}

func TestValidationErrorCarriesFieldErrors(t *testing.T) {
	err := NewValidationError("validation failed", map[string][]string{
		"email": {"email must be a valid email address"},
	})

	mapped := ToDomainError(err)
	require.Contains(t, mapped.Details, "fieldErrors")
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}
