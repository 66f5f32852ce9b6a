package storage

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSealer_RoundTrip(t *testing.T) {
	sealer, err := NewTokenSealer("passphrase")
	require.NoError(t, err)

	sealed, err := sealer.Seal("ya29.secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "ya29.secret")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ya29.secret", opened)
}

func TestTokenSealer_SaltIsStoredWithValue(t *testing.T) {
	first, err := NewTokenSealer("passphrase")
	require.NoError(t, err)
	second, err := NewTokenSealer("passphrase")
	require.NoError(t, err)

	a, err := first.Seal("ya29.secret")
	require.NoError(t, err)
	b, err := second.Seal("ya29.secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	// a later process with the same passphrase reads both
	for _, sealed := range []string{a, b} {
		opened, err := second.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "ya29.secret", opened)
	}

	rawA, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(a, sealedPrefix))
	require.NoError(t, err)
	rawB, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(b, sealedPrefix))
	require.NoError(t, err)
	assert.NotEqual(t, rawA[:kdfSaltLen], rawB[:kdfSaltLen])
}

func TestTokenSealer_TruncatedValue(t *testing.T) {
	sealer, err := NewTokenSealer("passphrase")
	require.NoError(t, err)

	_, err = sealer.Open(sealedPrefix + base64.StdEncoding.EncodeToString([]byte("short")))

	assert.ErrorContains(t, err, "truncated")
}

func TestTokenSealer_NilSealerIsPassthrough(t *testing.T) {
	sealer, err := NewTokenSealer("")
	require.NoError(t, err)
	assert.Nil(t, sealer)

	sealed, err := sealer.Seal("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", sealed)

	opened, err := sealer.Open("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", opened)
}

func TestTokenSealer_OpenSealedWithoutKey(t *testing.T) {
	sealer, err := NewTokenSealer("passphrase")
	require.NoError(t, err)
	sealed, err := sealer.Seal("secret")
	require.NoError(t, err)

	var none *TokenSealer
	_, err = none.Open(sealed)

	assert.ErrorIs(t, err, ErrNoEncryptionKey)
}

func TestTokenSealer_WrongKeyFails(t *testing.T) {
	a, _ := NewTokenSealer("one")
	b, _ := NewTokenSealer("two")
	sealed, err := a.Seal("secret")
	require.NoError(t, err)

	_, err = b.Open(sealed)

	assert.Error(t, err)
}

func TestTokenSealer_EmptyValueStaysEmpty(t *testing.T) {
	sealer, _ := NewTokenSealer("k")

	sealed, err := sealer.Seal("")

	require.NoError(t, err)
	assert.Empty(t, sealed)
}
