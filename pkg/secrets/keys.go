package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required size for both the app and device keys
	KeySize = 32 // 256 bits for AES-256

	// saltInfo is used for HKDF key derivation to provide domain separation
	saltInfo = "authstate-credentials-v1"
)

// ValidateKeys checks that both keys are the correct length.
func ValidateKeys(appKey, deviceKey []byte) error {
	if len(appKey) != KeySize {
		return ErrInvalidAppKey
	}
	if len(deviceKey) != KeySize {
		return ErrInvalidDeviceKey
	}
	return nil
}

// newAEAD validates both keys, derives the compound key via HKDF and builds
// the AES-GCM primitive. The derived key is zeroed before returning; the
// cipher holds its own copy of the key schedule.
func newAEAD(appKey, deviceKey []byte) (cipher.AEAD, error) {
	if err := ValidateKeys(appKey, deviceKey); err != nil {
		return nil, err
	}

	key := make([]byte, KeySize)
	defer clearBytes(key)

	kdf := hkdf.New(sha256.New, appKey, deviceKey, []byte(saltInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return cipher.NewGCM(block)
}

// clearBytes zeros out a byte slice to limit how long derived key material
// stays in memory.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey creates a new random 32-byte key suitable for encryption.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
