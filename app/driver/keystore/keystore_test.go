package keystore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-client/app/domain"
	"auth-client/app/utils/logger"
)

func testLogger() *slog.Logger {
	l, _ := logger.NewWithWriter("debug", io.Discard)
	return l
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := New(dir, "test-passphrase", testLogger())
	require.NoError(t, err)
	return store, dir
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.KeyAPIToken, "token-value"))

	got, err := store.Read(ctx, domain.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "token-value", got)
}

func TestStore_ReadMissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Read(context.Background(), domain.KeyIDToken)
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.KeyAPIToken, "first"))
	require.NoError(t, store.Write(ctx, domain.KeyAPIToken, "second"))

	got, err := store.Read(ctx, domain.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestStore_ValuesAreEncryptedOnDisk(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.KeyIDToken, "very-secret-token"))

	raw, err := os.ReadFile(filepath.Join(dir, domain.KeyIDToken))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "very-secret-token")
}

func TestStore_ClearAllRemovesOldSchemaKeys(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, domain.KeyAPIToken, "t"))
	require.NoError(t, store.Write(ctx, domain.KeyUserProfile, "{}"))
	// Simulate a key left behind by an older schema version.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy_session"), []byte("old"), 0o600))

	require.NoError(t, store.ClearAll(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.Equal(t, saltFile, entry.Name(), "only the salt may survive ClearAll")
	}

	_, err = store.Read(ctx, domain.KeyAPIToken)
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)

	// The store stays usable after a clear.
	require.NoError(t, store.Write(ctx, domain.KeyAPIToken, "fresh"))
	got, err := store.Read(ctx, domain.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestStore_ReopenWithSamePassphrase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := New(dir, "stable-passphrase", testLogger())
	require.NoError(t, err)
	require.NoError(t, first.Write(ctx, domain.KeyAPIToken, "persisted"))

	second, err := New(dir, "stable-passphrase", testLogger())
	require.NoError(t, err)

	got, err := second.Read(ctx, domain.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestStore_WrongPassphraseFailsToDecrypt(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := New(dir, "right-passphrase", testLogger())
	require.NoError(t, err)
	require.NoError(t, first.Write(ctx, domain.KeyAPIToken, "secret"))

	second, err := New(dir, "wrong-passphrase", testLogger())
	require.NoError(t, err)

	_, err = second.Read(ctx, domain.KeyAPIToken)
	assert.ErrorContains(t, err, "failed to decrypt")
}

func TestStore_RejectsInvalidKeys(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.Write(ctx, "../escape", "v"))
	assert.Error(t, store.Write(ctx, "UpperCase", "v"))
	_, err := store.Read(ctx, "")
	assert.Error(t, err)
}

func TestStore_ProfileSnapshotRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := "A"
	original := &domain.UserProfile{
		InternalUserID: "user-1",
		FirstName:      &first,
		Roles:          []string{domain.RolePatient},
		PatientProfile: &domain.PatientProfile{Status: "PROFILE_COMPLETE"},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, domain.KeyUserProfile, string(raw)))

	stored, err := store.Read(ctx, domain.KeyUserProfile)
	require.NoError(t, err)

	restored := &domain.UserProfile{}
	require.NoError(t, json.Unmarshal([]byte(stored), restored))
	assert.Equal(t, original, restored)
}
