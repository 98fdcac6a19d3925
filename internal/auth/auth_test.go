package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKey(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewDriveServiceMissingFile(t *testing.T) {
	_, err := NewDriveService(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read credentials")
}

func TestNewDriveServiceMalformedKey(t *testing.T) {
	path := writeKey(t, "{broken")

	_, err := NewDriveService(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse credentials")
}

func TestNewDriveServiceRejectsNonServiceAccount(t *testing.T) {
	path := writeKey(t, `{"type":"authorized_user","client_email":"x@y","private_key":"k"}`)

	_, err := NewDriveService(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected credentials type")
}

func TestNewDriveServiceRejectsIncompleteKey(t *testing.T) {
	path := writeKey(t, `{"type":"service_account","client_email":"","private_key":""}`)

	_, err := NewDriveService(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing client_email or private_key")
}
