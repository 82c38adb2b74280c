package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhony29a/bliss/internal/utils/pagination"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := pagination.Cursor{LikerID: 42, UpdatedUnix: 1700000000000}

	token, err := pagination.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_EmptyTokenIsFirstPage(t *testing.T) {
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.Equal(t, pagination.Cursor{}, c)
}

func TestDecode_GarbageToken(t *testing.T) {
	_, err := pagination.Decode("not base64 at all!")
	assert.Error(t, err)

	// valid base64, invalid payload
	_, err = pagination.Decode("bm90IGpzb24=")
	assert.Error(t, err)
}
