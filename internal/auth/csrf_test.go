package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateCSRFToken_ReturnsExistingUnchanged(t *testing.T) {
	t.Parallel()

	token, created, err := GetOrCreateCSRFToken("existing-token")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "existing-token", token)
}

func TestGetOrCreateCSRFToken_GeneratesRandomHex(t *testing.T) {
	t.Parallel()

	token, created, err := GetOrCreateCSRFToken("")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, token, csrfTokenBytes*2)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	other, _, err := GetOrCreateCSRFToken("")
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
