package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/ledger"
)

func TestParseAmount(t *testing.T) {
	t.Run("valid decimal string parses", func(t *testing.T) {
		d, err := parseAmount("1500.25")
		require.NoError(t, err)
		assert.Equal(t, "1500.25", d.StringFixed(2))
	})

	t.Run("invalid string returns a validation error", func(t *testing.T) {
		_, err := parseAmount("lots")
		require.Error(t, err)
		assert.True(t, ledger.IsValidation(err))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("empty input maps to the zero time", func(t *testing.T) {
		d, err := parseDate("")
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("valid date parses", func(t *testing.T) {
		d, err := parseDate("2026-08-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-15", d.Format(dateLayout))
	})

	t.Run("other layouts are rejected", func(t *testing.T) {
		_, err := parseDate("15/08/2026")
		require.Error(t, err)
		assert.True(t, ledger.IsValidation(err))
	})
}

func TestHandleStoreError(t *testing.T) {
	t.Run("validation errors map to 400", func(t *testing.T) {
		status, _ := handleStoreError(&ledger.ValidationError{Field: "amount", Reason: "must be greater than zero"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		status, _ := handleStoreError(ledger.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("permission denied maps to 403", func(t *testing.T) {
		status, _ := handleStoreError(ledger.ErrPermissionDenied)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("anything else maps to 500", func(t *testing.T) {
		status, _ := handleStoreError(assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, status)
	})
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))

	s := optional("note")
	require.NotNil(t, s)
	assert.Equal(t, "note", *s)
}
