package pagination_test

import (
	"testing"
	"time"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/pagination"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	emission := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 15, 10, 30, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(emission, createdAt)
	gotEmission, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	require.True(t, emission.Equal(gotEmission))
	require.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	require.Error(t, err)

	_, _, err = pagination.DecodeToken("aGVsbG8=") // valid base64, no separator
	require.Error(t, err)
}
