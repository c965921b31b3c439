// Package credentialstore provides the durable, encrypted credential store
// backing long-lived auth sessions on a client device.
//
// Three record families are supported, each behind put/get/remove primitives:
//
//  1. The primary session credential, the serialized snapshot of an
//     established session, optionally namespaced by user id.
//  2. Device metadata, the identity provider's remembered-device record,
//     namespaced by username.
//  3. A singleton device-fingerprint record.
//
// Every key is deterministically namespaced by the configured pool
// identifiers ("<root>.<userPoolID>.<appClientID>.<suffix>", with a
// "<userID>_" prefix for per-user session keys), so multiple configurations
// can share one physical store without collisions.
//
// # Storage backends
//
// The KeyValueStorage interface is the platform-storage boundary.
// MemoryStorage serves tests, RedisStorage serves server-side agents, and
// EncryptedStorage wraps any backend with AES-256-GCM using the secrets
// package. Platform keychains slot in by implementing the same interface.
//
// # Errors
//
// "Not found" is reported through dedicated sentinels (ErrCredentialNotFound,
// ErrDeviceMetadataNotFound, ErrFingerprintNotFound) and is not a failure:
// callers treat it as an empty credential. Genuine I/O problems wrap
// ErrStorageFailure. Match with errors.Is.
package credentialstore
