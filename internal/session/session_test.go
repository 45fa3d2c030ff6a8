package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SignAndVerify(t *testing.T) {
	m := New("secret")

	signed, err := m.Sign("ABCDEF", 2)
	require.NoError(t, err)

	code, playerID, err := m.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, "ABCDEF", code)
	assert.Equal(t, 2, playerID)
}

func TestManager_Verify_BadToken(t *testing.T) {
	m := New("secret")

	_, _, err := m.Verify("not-a-token")
	assert.Error(t, err)

	signed, err := New("other-secret").Sign("ABCDEF", 1)
	require.NoError(t, err)

	_, _, err = m.Verify(signed)
	assert.Error(t, err)
}
