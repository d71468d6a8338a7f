package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	minPassphraseLength = 8
	keyLength           = 32
	keyIterations       = 4096
)

// keySalt is fixed so the same passphrase always derives the same key.
// Secrecy rests entirely on the passphrase.
var keySalt = []byte("mkenv.kubetrail.io")

// NewAesKeyFromPassphrase derives a 256-bit AES key from a passphrase.
func NewAesKeyFromPassphrase(passphrase []byte) ([]byte, error) {
	if len(passphrase) < minPassphraseLength {
		return nil, fmt.Errorf("passphrase needs to be at least %d characters long", minPassphraseLength)
	}

	return pbkdf2.Key(passphrase, keySalt, keyIterations, keyLength, sha256.New), nil
}

// EncryptWithAesKey seals data using AES-GCM with a random nonce.
// The nonce is prepended to the returned ciphertext.
func EncryptWithAesKey(data, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM cipher: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, data, nil), nil
}

// DecryptWithAesKey opens ciphertext produced by EncryptWithAesKey.
func DecryptWithAesKey(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM cipher: %w", err)
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext is shorter than nonce length")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	data, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	return data, nil
}
