package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/atlaserp/ledger_engine/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	postingDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

	token := pagination.EncodeToken(postingDate, createdAt)
	gotPosting, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, postingDate.Equal(gotPosting))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-valid-base64!!!")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64 of "2025-03-14T00:00:00Z" with no separator.
	token := pagination.EncodeDateBasedToken(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	_, _, err := pagination.DecodeToken(token)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}

func TestDecodeToken_UnparseableTimestamp(t *testing.T) {
	// base64 of "garbage|garbage": well formed token, bad timestamps.
	_, _, err := pagination.DecodeToken(base64.StdEncoding.EncodeToString([]byte("garbage|garbage")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "posting date parse")
}

func TestDateBasedTokenRoundTrip(t *testing.T) {
	date := time.Date(2025, 7, 1, 12, 30, 0, 123456789, time.UTC)

	token := pagination.EncodeDateBasedToken(date)
	got, err := pagination.DecodeDateBasedToken(token)

	require.NoError(t, err)
	assert.True(t, date.Equal(got))
}

func TestDecodeDateBasedToken_InvalidBase64(t *testing.T) {
	_, err := pagination.DecodeDateBasedToken("%%%")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestDecodeDateBasedToken_NotATimestamp(t *testing.T) {
	_, err := pagination.DecodeDateBasedToken("aGVsbG8=") // "hello"

	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
