package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, token, 43)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("sheet-a"))
	require.Equal(t, a, Fingerprint([]byte("sheet-a")))
	require.NotEqual(t, a, Fingerprint([]byte("sheet-b")))
	require.Len(t, a, 43)
}
