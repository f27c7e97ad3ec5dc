package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/travel-client/internal/core/domain"
)

var asha = domain.Identity{ID: "7", Username: "asha", Email: "asha@example.com", Phone: "555-0101"}

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	id, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestFileStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, asha))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, asha, *got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty store removes its file")

	require.NoError(t, s.Clear(ctx), "clearing twice is fine")
}

func TestFileStore_KeepsOtherEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, asha))
	require.NoError(t, s.Clear(ctx))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries map[string]any
	require.NoError(t, json.Unmarshal(b, &entries))
	assert.Equal(t, map[string]any{"theme": "dark"}, entries)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Save(ctx, asha))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	got.Email = "changed@example.com"

	again, _ := s.Load(ctx)
	assert.Equal(t, asha.Email, again.Email, "Load returns a copy")

	require.NoError(t, s.Clear(ctx))
	got, _ = s.Load(ctx)
	assert.Nil(t, got)
}
