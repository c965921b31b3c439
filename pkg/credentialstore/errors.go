package credentialstore

import "errors"

var (
	// ErrKeyNotFound is returned by KeyValueStorage implementations for absent keys.
	ErrKeyNotFound = errors.New("credentialstore: key not found")

	// ErrStorageFailure wraps genuine I/O failures from the underlying storage.
	ErrStorageFailure = errors.New("credentialstore: storage failure")

	// ErrNilStorage indicates a store was constructed without a backend.
	ErrNilStorage = errors.New("credentialstore: storage cannot be nil")

	// ErrCredentialNotFound indicates no session credential record exists.
	// Treated as an empty credential by callers, not a failure.
	ErrCredentialNotFound = errors.New("credentialstore: credential not found")

	// ErrDeviceMetadataNotFound indicates no device metadata record exists.
	ErrDeviceMetadataNotFound = errors.New("credentialstore: device metadata not found")

	// ErrFingerprintNotFound indicates no fingerprint device record exists.
	ErrFingerprintNotFound = errors.New("credentialstore: fingerprint device not found")

	// ErrEncodingFailed wraps codec marshal failures.
	ErrEncodingFailed = errors.New("credentialstore: encoding failed")

	// ErrDecodingFailed wraps codec unmarshal failures.
	ErrDecodingFailed = errors.New("credentialstore: decoding failed")
)
