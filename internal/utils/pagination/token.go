package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeCursorToken creates an opaque token pointing after the given entry id.
// The account id is embedded so a token cannot be replayed against another ledger.
func EncodeCursorToken(accountID, afterID int64) string {
	return EncodeMultiFieldToken(strconv.FormatInt(accountID, 10), strconv.FormatInt(afterID, 10))
}

// DecodeCursorToken parses a token created by EncodeCursorToken for accountID.
func DecodeCursorToken(token string, accountID int64) (int64, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	tokenAccountID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (account id parse): %w", err)
	}
	if tokenAccountID != accountID {
		return 0, fmt.Errorf("pagination token belongs to a different account")
	}
	afterID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || afterID < 0 {
		return 0, fmt.Errorf("invalid pagination token format (cursor parse)")
	}
	return afterID, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
