package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompareHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "secret1"},
		{name: "long password", password: "a-much-longer-password-with-symbols-!@#$%"},
		{name: "unicode password", password: "contraseña-ñandú"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, CompareHash(hash, tt.password))
			assert.Error(t, CompareHash(hash, tt.password+"x"))
		})
	}
}

func TestGetHash_DifferentSaltEachTime(t *testing.T) {
	h1, err := GetHash("secret1")
	require.NoError(t, err)
	h2, err := GetHash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareHash_GarbageHash(t *testing.T) {
	assert.Error(t, CompareHash("not-a-bcrypt-hash", "secret1"))
}
