package storage

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks values written by TokenSealer. The payload is
// base64(salt | nonce | ciphertext).
const sealedPrefix = "enc:v2:"

// argon2id parameters for the key derivation
const (
	kdfMemory  = 64 * 1024
	kdfSaltLen = 16
	kdfThreads = 4
	kdfTime    = 1
)

// ErrNoEncryptionKey is returned when a sealed value is read without a key
var ErrNoEncryptionKey = errors.New("token is encrypted but no encryption key is configured")

// TokenSealer encrypts tokens at rest with XChaCha20-Poly1305 under a key
// derived from a passphrase with argon2id. A nil sealer stores values in
// plain text.
type TokenSealer struct {
	passphrase []byte

	mu    sync.Mutex
	salt  []byte                 // salt of the values sealed by this process
	aeads map[string]cipher.AEAD // derived ciphers by salt
}

// NewTokenSealer prepares a sealer for a passphrase. An empty passphrase
// disables sealing and returns a nil sealer.
func NewTokenSealer(passphrase string) (*TokenSealer, error) {
	if passphrase == "" {
		return nil, nil
	}
	salt := make([]byte, kdfSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate key salt: %w", err)
	}
	return &TokenSealer{
		aeads:      make(map[string]cipher.AEAD),
		passphrase: []byte(passphrase),
		salt:       salt,
	}, nil
}

// cipherFor derives the key for salt once and caches the cipher
func (s *TokenSealer) cipherFor(salt []byte) (cipher.AEAD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if aead, ok := s.aeads[string(salt)]; ok {
		return aead, nil
	}
	key := argon2.IDKey(s.passphrase, salt, kdfTime, kdfMemory, kdfThreads, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cipher: %w", err)
	}
	s.aeads[string(salt)] = aead
	return aead, nil
}

// Seal encrypts plaintext. Empty values stay empty.
func (s *TokenSealer) Seal(plaintext string) (string, error) {
	if s == nil || plaintext == "" {
		return plaintext, nil
	}
	aead, err := s.cipherFor(s.salt)
	if err != nil {
		return "", err
	}

	out := make([]byte, len(s.salt)+aead.NonceSize(), len(s.salt)+aead.NonceSize()+len(plaintext)+aead.Overhead())
	copy(out, s.salt)
	nonce := out[len(s.salt):]
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := aead.Seal(out, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Values without the sealed prefix
// are returned unchanged.
func (s *TokenSealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return value, nil
	}
	if s == nil {
		return "", ErrNoEncryptionKey
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed token: %w", err)
	}
	if len(data) < kdfSaltLen+chacha20poly1305.NonceSizeX {
		return "", errors.New("sealed token is truncated")
	}

	salt, rest := data[:kdfSaltLen], data[kdfSaltLen:]
	aead, err := s.cipherFor(salt)
	if err != nil {
		return "", err
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open sealed token: %w", err)
	}
	return string(plaintext), nil
}
