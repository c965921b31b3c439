package credentialstore

import (
	"context"
	"errors"

	"github.com/dmitrymomot/authstate/pkg/secrets"
)

// EncryptedStorage wraps any KeyValueStorage with AES-256-GCM encryption,
// using a compound key derived from an application key and a device-local
// key. Keys remain plaintext; only values are encrypted.
type EncryptedStorage struct {
	backend   KeyValueStorage
	appKey    []byte
	deviceKey []byte
}

// NewEncryptedStorage creates an encrypting wrapper around backend.
// Both keys must be exactly secrets.KeySize bytes.
func NewEncryptedStorage(backend KeyValueStorage, appKey, deviceKey []byte) (*EncryptedStorage, error) {
	if backend == nil {
		return nil, ErrNilStorage
	}
	if err := secrets.ValidateKeys(appKey, deviceKey); err != nil {
		return nil, err
	}
	return &EncryptedStorage{
		backend:   backend,
		appKey:    append([]byte(nil), appKey...),
		deviceKey: append([]byte(nil), deviceKey...),
	}, nil
}

func (s *EncryptedStorage) Set(ctx context.Context, key string, value []byte) error {
	ciphertext, err := secrets.EncryptBytes(s.appKey, s.deviceKey, value)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return s.backend.Set(ctx, key, ciphertext)
}

func (s *EncryptedStorage) Get(ctx context.Context, key string) ([]byte, error) {
	ciphertext, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	plaintext, err := secrets.DecryptBytes(s.appKey, s.deviceKey, ciphertext)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return plaintext, nil
}

func (s *EncryptedStorage) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}
