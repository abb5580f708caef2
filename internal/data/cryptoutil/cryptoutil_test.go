package cryptoutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestAESGCMEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewAESGCMEncryptor(testKey())
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("ya29.a0AfB_access-token"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "v1:"))
	assert.NotContains(t, ct, "access-token")

	pt, err := enc.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a0AfB_access-token", string(pt))
}

func TestAESGCMEncryptor_NonceVariesPerCall(t *testing.T) {
	enc, err := NewAESGCMEncryptor(testKey())
	require.NoError(t, err)

	a, err := enc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := enc.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAESGCMEncryptor_RejectsBadKeyLength(t *testing.T) {
	_, err := NewAESGCMEncryptor([]byte("short"))
	assert.ErrorContains(t, err, "32 bytes")
}

func TestAESGCMEncryptor_RejectsTamperedCiphertext(t *testing.T) {
	enc, err := NewAESGCMEncryptor(testKey())
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("refresh-token"))
	require.NoError(t, err)

	mid := len(ct) / 2
	flip := byte('A')
	if ct[mid] == flip {
		flip = 'B'
	}
	tampered := ct[:mid] + string(flip) + ct[mid+1:]
	_, err = enc.Decrypt(tampered)
	assert.Error(t, err)
}

func TestAESGCMEncryptor_RejectsUnknownVersion(t *testing.T) {
	enc, err := NewAESGCMEncryptor(testKey())
	require.NoError(t, err)

	_, err = enc.Decrypt("v9:whatever")
	assert.ErrorContains(t, err, "unknown ciphertext version")
}

func TestAESGCMEncryptor_ReadsNoopValues(t *testing.T) {
	noopCT, err := NoopEncryptor{}.Encrypt([]byte("stored before key was set"))
	require.NoError(t, err)

	enc, err := NewAESGCMEncryptor(testKey())
	require.NoError(t, err)

	pt, err := enc.Decrypt(noopCT)
	require.NoError(t, err)
	assert.Equal(t, "stored before key was set", string(pt))
}

func TestNoopEncryptor(t *testing.T) {
	var enc NoopEncryptor

	ct, err := enc.Encrypt([]byte("token"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "noop:"))

	pt, err := enc.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "token", string(pt))

	_, err = enc.Decrypt("v1:not-noop")
	assert.Error(t, err)
}
