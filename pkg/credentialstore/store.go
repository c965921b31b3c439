package credentialstore

import (
	"context"
	"errors"
)

// DeviceMetadata is the per-user remembered-device record issued by the
// identity provider.
type DeviceMetadata struct {
	DeviceKey      string `json:"device_key"`
	DeviceGroupKey string `json:"device_group_key"`
	DeviceSecret   string `json:"device_secret,omitempty"`
}

// FingerprintDevice is the singleton device-fingerprint record used for
// adaptive-security telemetry.
type FingerprintDevice struct {
	ID string `json:"id"`
}

// Store is the durable credential store: encrypted, namespaced key-value
// records for the established-session snapshot and device metadata. The
// serialization format is opaque to callers; an injected Codec provides
// encode/decode and must round-trip exactly.
type Store struct {
	storage KeyValueStorage
	codec   Codec
	keys    KeyConfig
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithCodec replaces the default JSON codec.
func WithCodec(codec Codec) StoreOption {
	return func(s *Store) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// New creates a credential store over the given storage, namespacing all keys
// with keys.
func New(storage KeyValueStorage, keys KeyConfig, opts ...StoreOption) (*Store, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}
	s := &Store{
		storage: storage,
		codec:   JSONCodec{},
		keys:    keys,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SaveCredential persists the primary session credential, optionally
// namespaced by user id.
func (s *Store) SaveCredential(ctx context.Context, userID string, credential any) error {
	return s.put(ctx, s.keys.SessionKey(userID), credential)
}

// RetrieveCredential loads the primary session credential into out. Returns
// ErrCredentialNotFound when no record exists; callers treat that as an empty
// credential, not a failure.
func (s *Store) RetrieveCredential(ctx context.Context, userID string, out any) error {
	return s.get(ctx, s.keys.SessionKey(userID), out, ErrCredentialNotFound)
}

// DeleteCredential removes the primary session credential. Deleting an absent
// credential is a no-op.
func (s *Store) DeleteCredential(ctx context.Context, userID string) error {
	return s.storage.Delete(ctx, s.keys.SessionKey(userID))
}

// SaveDeviceMetadata persists the remembered-device record for a username.
func (s *Store) SaveDeviceMetadata(ctx context.Context, username string, metadata DeviceMetadata) error {
	return s.put(ctx, s.keys.DeviceMetadataKey(username), metadata)
}

// RetrieveDeviceMetadata loads the remembered-device record for a username.
func (s *Store) RetrieveDeviceMetadata(ctx context.Context, username string) (DeviceMetadata, error) {
	var metadata DeviceMetadata
	err := s.get(ctx, s.keys.DeviceMetadataKey(username), &metadata, ErrDeviceMetadataNotFound)
	return metadata, err
}

// DeleteDeviceMetadata removes the remembered-device record for a username.
func (s *Store) DeleteDeviceMetadata(ctx context.Context, username string) error {
	return s.storage.Delete(ctx, s.keys.DeviceMetadataKey(username))
}

// SaveFingerprintDevice persists the singleton device-fingerprint record.
func (s *Store) SaveFingerprintDevice(ctx context.Context, device FingerprintDevice) error {
	return s.put(ctx, s.keys.FingerprintKey(), device)
}

// RetrieveFingerprintDevice loads the singleton device-fingerprint record.
func (s *Store) RetrieveFingerprintDevice(ctx context.Context) (FingerprintDevice, error) {
	var device FingerprintDevice
	err := s.get(ctx, s.keys.FingerprintKey(), &device, ErrFingerprintNotFound)
	return device, err
}

// DeleteFingerprintDevice removes the singleton device-fingerprint record.
func (s *Store) DeleteFingerprintDevice(ctx context.Context) error {
	return s.storage.Delete(ctx, s.keys.FingerprintKey())
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return errors.Join(ErrEncodingFailed, err)
	}
	return s.storage.Set(ctx, key, data)
}

func (s *Store) get(ctx context.Context, key string, out any, notFound error) error {
	data, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return notFound
		}
		return err
	}
	if err := s.codec.Unmarshal(data, out); err != nil {
		return errors.Join(ErrDecodingFailed, err)
	}
	return nil
}
