package secrets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authstate/pkg/secrets"
)

func testKeys(t *testing.T) (appKey, deviceKey []byte) {
	t.Helper()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	deviceKey, err = secrets.GenerateKey()
	require.NoError(t, err)
	return appKey, deviceKey
}

func TestEncryptDecryptBytes(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)
	payload := []byte(`{"access_token":"abc","refresh_token":"def"}`)

	ciphertext, err := secrets.EncryptBytes(appKey, deviceKey, payload)
	require.NoError(t, err)
	assert.NotEqual(t, payload, ciphertext)

	plaintext, err := secrets.DecryptBytes(appKey, deviceKey, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, payload, plaintext)
}

func TestEncryptDecryptString(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)

	ciphertext, err := secrets.EncryptString(appKey, deviceKey, "super-secret")
	require.NoError(t, err)

	plaintext, err := secrets.DecryptString(appKey, deviceKey, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "super-secret", plaintext)
}

func TestDecryptWithWrongKeys(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)
	otherKey, _ := testKeys(t)

	ciphertext, err := secrets.EncryptBytes(appKey, deviceKey, []byte("payload"))
	require.NoError(t, err)

	_, err = secrets.DecryptBytes(otherKey, deviceKey, ciphertext)
	assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)

	_, err = secrets.DecryptBytes(appKey, otherKey, ciphertext)
	assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
}

func TestValidateKeys(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)

	assert.NoError(t, secrets.ValidateKeys(appKey, deviceKey))
	assert.ErrorIs(t, secrets.ValidateKeys([]byte("short"), deviceKey), secrets.ErrInvalidAppKey)
	assert.ErrorIs(t, secrets.ValidateKeys(appKey, []byte("short")), secrets.ErrInvalidDeviceKey)
}

func TestInvalidCiphertext(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)

	_, err := secrets.DecryptBytes(appKey, deviceKey, []byte("too-short"))
	assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)

	_, err = secrets.DecryptString(appKey, deviceKey, "not-base64!!!")
	assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
}

func TestUniqueNonces(t *testing.T) {
	t.Parallel()

	appKey, deviceKey := testKeys(t)

	first, err := secrets.EncryptBytes(appKey, deviceKey, []byte("payload"))
	require.NoError(t, err)
	second, err := secrets.EncryptBytes(appKey, deviceKey, []byte("payload"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two encryptions of the same payload must differ")
}
