package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potx/internal/settings"
)

func newTestStore(t *testing.T) *settings.Store {
	t.Helper()
	store, err := settings.Open(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	return store
}

func TestStoreSetting_Types(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, storeSetting(store, "/name", "hello", "string"))
	assert.Equal(t, "hello", store.String("/name", ""))

	require.NoError(t, storeSetting(store, "/use_tm", "false", "bool"))
	assert.False(t, store.Bool("/use_tm", true))

	require.NoError(t, storeSetting(store, "/count", "42", "int"))
	assert.Equal(t, int64(42), store.Int("/count", 0))

	require.NoError(t, storeSetting(store, "/ota/last_check", "2026-01-15T10:00:00Z", "time"))
	want := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.True(t, store.Time("/ota/last_check", time.Time{}).Equal(want))
}

func TestStoreSetting_BadValues(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, storeSetting(store, "/k", "notabool", "bool"))
	assert.Error(t, storeSetting(store, "/k", "1.5", "int"))
	assert.Error(t, storeSetting(store, "/k", "yesterday", "time"))
	assert.Error(t, storeSetting(store, "/k", "x", "float"))
}
