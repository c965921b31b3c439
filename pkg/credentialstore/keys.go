package credentialstore

import "strings"

const (
	sessionSuffix        = "session"
	deviceMetadataSuffix = "deviceMetadata"
	fingerprintSuffix    = "fingerprintDevice"
)

// KeyConfig namespaces every stored record by the configured identity-provider
// pool identifiers, so multiple configurations never collide on one physical
// store. Keys follow the scheme "<root>.<userPoolID>.<appClientID>.<suffix>",
// optionally prefixed "<userID>_" for per-user session records.
type KeyConfig struct {
	Root        string
	UserPoolID  string
	AppClientID string
}

func (k KeyConfig) root() string {
	if k.Root == "" {
		return "authstate"
	}
	return k.Root
}

func (k KeyConfig) build(prefix, suffix string) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("_")
	}
	b.WriteString(k.root())
	b.WriteString(".")
	b.WriteString(k.UserPoolID)
	b.WriteString(".")
	b.WriteString(k.AppClientID)
	b.WriteString(".")
	b.WriteString(suffix)
	return b.String()
}

// SessionKey returns the namespaced key for the primary session credential.
// userID may be empty for the device-level record.
func (k KeyConfig) SessionKey(userID string) string {
	return k.build(userID, sessionSuffix)
}

// DeviceMetadataKey returns the namespaced key for a user's device metadata.
func (k KeyConfig) DeviceMetadataKey(username string) string {
	return k.build(username, deviceMetadataSuffix)
}

// FingerprintKey returns the namespaced key for the singleton
// device-fingerprint record.
func (k KeyConfig) FingerprintKey() string {
	return k.build("", fingerprintSuffix)
}
