package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// EncryptString encrypts a string using the compound key derived from the app
// and device keys. Returns base64-encoded ciphertext.
func EncryptString(appKey, deviceKey []byte, plaintext string) (string, error) {
	ciphertext, err := EncryptBytes(appKey, deviceKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decrypts a base64-encoded ciphertext back to string.
func DecryptString(appKey, deviceKey []byte, ciphertext string) (string, error) {
	ciphertextBytes, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	plaintextBytes, err := DecryptBytes(appKey, deviceKey, ciphertextBytes)
	if err != nil {
		return "", err
	}

	return string(plaintextBytes), nil
}

// EncryptBytes encrypts raw bytes using the compound key derived from the app
// and device keys. Returns ciphertext in format: nonce + encrypted data + tag.
func EncryptBytes(appKey, deviceKey []byte, data []byte) ([]byte, error) {
	aead, err := newAEAD(appKey, deviceKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	// Prepend nonce to ciphertext so the record is self-contained.
	return aead.Seal(nonce, nonce, data, nil), nil
}

// DecryptBytes decrypts ciphertext back to raw bytes.
// Expects ciphertext in format: nonce + encrypted data + tag.
func DecryptBytes(appKey, deviceKey []byte, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(appKey, deviceKey)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrInvalidCiphertext
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
