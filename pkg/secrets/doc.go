// Package secrets encrypts credentials persisted on a client device.
//
// A compound 32-byte key is derived from an application key and a
// device-local key using HKDF-SHA-256; the derived key is then used with
// AES-256 in GCM mode to protect arbitrary byte slices or UTF-8 strings.
// Losing either key renders stored credentials unreadable, which is the
// intended property: a record copied off the device cannot be opened with the
// application key alone.
//
// On successful encryption the nonce is prepended to the ciphertext so that
// the stored record is self-contained.
//
// # Usage
//
//	appKey, _ := secrets.GenerateKey()
//	deviceKey, _ := secrets.GenerateKey()
//
//	ct, err := secrets.EncryptBytes(appKey, deviceKey, payload)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := secrets.DecryptBytes(appKey, deviceKey, ct)
//
// # Error Handling
//
// All public functions return errors wrapping a sentinel such as
// ErrEncryptionFailed or ErrInvalidCiphertext. Use errors.Is to match.
package secrets
