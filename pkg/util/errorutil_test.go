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

func TestToDomainError_PassesThroughDomainError(t *testing.T) {
	t.Parallel()

	original := NewAuthenticationFailed("bad credentials")
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))

	require.NotNil(t, mapped)
	assert.Equal(t, "AUTHENTICATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
}

func TestToDomainError_NoRowsIsNotFound(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_GenericIsInternal(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	mapped := ToDomainError(cause)
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorIs(t, mapped, cause)
}

func TestToDomainError_NilStaysNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainError(nil))
}

func TestTaxonomyStatusCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewAuthenticationRequired("no session"), "AUTHENTICATION_REQUIRED", http.StatusUnauthorized},
		{NewAuthenticationFailed("bad creds"), "AUTHENTICATION_FAILED", http.StatusUnauthorized},
		{NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{NewNotFound("employee", nil), "NOT_FOUND", http.StatusNotFound},
		{NewConflict("dup", nil), "CONFLICT", http.StatusConflict},
		{NewInternalError(errors.New("x")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}
