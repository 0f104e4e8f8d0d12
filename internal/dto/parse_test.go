package dto

import (
	"strings"
	"testing"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"plain", "50.10", "50.1", nil},
		{"trailing zeros", "10.500", "10.5", nil},
		{"padded", " 7 ", "7", nil},
		{"largest storable", "99999999999999999.99", "99999999999999999.99", nil},
		{"missing", "", "", apperrors.ErrMissingParameter},
		{"blank", "   ", "", apperrors.ErrInvalidAmount},
		{"zero", "0", "", apperrors.ErrInvalidAmount},
		{"three decimals", "1.005", "", apperrors.ErrInvalidAmount},
		{"too many integer digits", "100000000000000000", "", apperrors.ErrInvalidAmount},
		{"exponent", "1e2", "", apperrors.ErrInvalidAmount},
		{"huge exponent", "1e20000000", "", apperrors.ErrInvalidAmount},
		{"tiny exponent", "1E-20000000", "", apperrors.ErrInvalidAmount},
		{"overlong", "0." + strings.Repeat("0", 40) + "1", "", apperrors.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Less(t, len(err.Error()), 200)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseBalance(t *testing.T) {
	got, err := ParseBalance("0")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = ParseBalance("1234.50")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", got.String())

	for _, raw := range []string{"-1", "1.005", "abc", "1e20000000", "1e-20000000", "100000000000000000", strings.Repeat("9", 30)} {
		_, err := ParseBalance(raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation, raw)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("account_id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("account_id", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingParameter)

	for _, raw := range []string{"0", "-3", "+3", "1.5", " 4", "x"} {
		_, err := ParseID("account_id", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation, raw)
	}
}

func TestParseBool(t *testing.T) {
	b, err := ParseBool("active", "false")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = ParseBool("active", "no")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
