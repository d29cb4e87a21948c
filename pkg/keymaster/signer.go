package keymaster

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// randomMaterialSize is how many random bytes feed each HMAC derivation.
const randomMaterialSize = 40

// Signer derives app key credentials from random material.
//
// The client id is an HMAC over fresh random bytes keyed by the server
// secret; the client secret is a second HMAC over fresh random bytes keyed
// by the server secret concatenated with the client id. Chaining the client
// id into the second key means the secret cannot be reproduced from the
// client id without the server secret.
type Signer struct {
	method       string
	serverSecret string

	// rand supplies the random material; only tests swap it out.
	rand io.Reader
}

// NewSigner builds a signer for the given signature method (sha1, sha256 or
// sha512) and server secret.
func NewSigner(method, serverSecret string) (*Signer, error) {
	if _, err := hashFor(method); err != nil {
		return nil, err
	}
	return &Signer{method: method, serverSecret: serverSecret, rand: rand.Reader}, nil
}

// Method returns the configured signature method.
func (s *Signer) Method() string {
	return s.method
}

// ServerSecret returns the configured server-side signing secret.
func (s *Signer) ServerSecret() string {
	return s.serverSecret
}

// Mint derives a fresh client id/secret pair using the supplied server
// secret, falling back to the signer's own when it is empty.
func (s *Signer) Mint(serverSecret string) (clientID, clientSecret string, err error) {
	if serverSecret == "" {
		serverSecret = s.serverSecret
	}

	clientID, err = s.sign(serverSecret)
	if err != nil {
		return "", "", err
	}
	clientSecret, err = s.sign(serverSecret + clientID)
	if err != nil {
		return "", "", err
	}
	return clientID, clientSecret, nil
}

func (s *Signer) sign(key string) (string, error) {
	material, err := randomBytes(s.rand, randomMaterialSize)
	if err != nil {
		return "", err
	}
	return s.derive(material, key)
}

// derive is the keyed step of sign: an HMAC over the given material, keyed by
// key. Split out so the keying can be exercised with fixed material.
func (s *Signer) derive(material []byte, key string) (string, error) {
	newHash, err := hashFor(s.method)
	if err != nil {
		return "", err
	}

	mac := hmac.New(newHash, []byte(key))
	mac.Write(material)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

func hashFor(method string) (func() hash.Hash, error) {
	switch method {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("unsupported signature method %q", method)
	}
}

func randomBytes(r io.Reader, size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(r, value); err != nil {
		return nil, err
	}
	return value, nil
}
