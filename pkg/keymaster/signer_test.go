package keymaster

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignerRejectsUnknownMethod(t *testing.T) {
	_, err := NewSigner("md5", "secret")
	assert.Error(t, err)

	for _, method := range []string{"sha1", "sha256", "sha512"} {
		_, err := NewSigner(method, "secret")
		assert.NoError(t, err, method)
	}
}

func TestMintProducesHexDigests(t *testing.T) {
	// The hex-encoded digest length follows the method's output size.
	sizes := map[string]int{"sha1": 40, "sha256": 64, "sha512": 128}

	for method, size := range sizes {
		signer, err := NewSigner(method, "secret")
		require.NoError(t, err)

		clientID, clientSecret, err := signer.Mint("")
		require.NoError(t, err)
		assert.Len(t, clientID, size, method)
		assert.Len(t, clientSecret, size, method)

		_, err = hex.DecodeString(clientID)
		assert.NoError(t, err)
		_, err = hex.DecodeString(clientSecret)
		assert.NoError(t, err)
	}
}

func TestMintIsNonDeterministic(t *testing.T) {
	signer, err := NewSigner("sha256", "secret")
	require.NoError(t, err)

	id1, secret1, err := signer.Mint("")
	require.NoError(t, err)
	id2, secret2, err := signer.Mint("")
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2, "each mint draws fresh random material")
	assert.NotEqual(t, secret1, secret2)
	assert.NotEqual(t, id1, secret1, "id and secret come from independent derivations")
}

func TestDeriveIsKeyedByServerSecret(t *testing.T) {
	signer, err := NewSigner("sha256", "secret-a")
	require.NoError(t, err)

	material := bytes.Repeat([]byte{0x2a}, randomMaterialSize)

	fromA, err := signer.derive(material, "secret-a")
	require.NoError(t, err)
	fromB, err := signer.derive(material, "secret-b")
	require.NoError(t, err)

	// Same random material, different server secret: the credentials must
	// differ, otherwise the secret would not be keying the derivation.
	assert.NotEqual(t, fromA, fromB)

	again, err := signer.derive(material, "secret-a")
	require.NoError(t, err)
	assert.Equal(t, fromA, again, "derivation is deterministic for fixed material and key")
}

func TestMintKeysSecretWithClientID(t *testing.T) {
	signer, err := NewSigner("sha256", "server-secret")
	require.NoError(t, err)

	// Two derivations of 40 bytes each, from a fixed stream.
	material := make([]byte, 2*randomMaterialSize)
	for i := range material {
		material[i] = byte(i)
	}
	signer.rand = bytes.NewReader(material)

	clientID, clientSecret, err := signer.Mint("")
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("server-secret"))
	mac.Write(material[:randomMaterialSize])
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), clientID)

	// The secret's HMAC key chains the client id onto the server secret, so
	// the secret cannot be reproduced from the client id alone.
	mac = hmac.New(sha256.New, []byte("server-secret"+clientID))
	mac.Write(material[randomMaterialSize:])
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), clientSecret)
}

func TestMintUsesSuppliedSecret(t *testing.T) {
	signer, err := NewSigner("sha256", "own-secret")
	require.NoError(t, err)

	// A per-key secret is accepted in place of the signer's own; both paths
	// must produce well-formed credentials.
	clientID, clientSecret, err := signer.Mint("per-key-secret")
	require.NoError(t, err)
	assert.Len(t, clientID, 64)
	assert.Len(t, clientSecret, 64)
}

func TestSignerAccessors(t *testing.T) {
	signer, err := NewSigner("sha512", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "sha512", signer.Method())
	assert.Equal(t, "s3cret", signer.ServerSecret())
}
