package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursorToken(t *testing.T) {
	token := EncodeCursorToken(42, 1337)
	assert.NotEmpty(t, token, "Token should not be empty")

	afterID, err := DecodeCursorToken(token, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1337), afterID)
}

func TestDecodeCursorTokenError(t *testing.T) {
	_, err := DecodeCursorToken("this is not base64!", 1)
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeCursorToken(EncodeMultiFieldToken("1"), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeCursorToken(EncodeMultiFieldToken("abc", "2"), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account id parse")

	_, err = DecodeCursorToken(EncodeCursorToken(7, 3), 8)
	assert.Error(t, err, "Token issued for another account must be rejected")

	_, err = DecodeCursorToken(EncodeMultiFieldToken("1", "-4"), 1)
	assert.Error(t, err)
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	fields, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}
