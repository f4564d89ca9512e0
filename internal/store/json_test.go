package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobwatch/internal/domain"
)

func TestLoadJSON_MissingReturnsDefault(t *testing.T) {
	def := []string{"keep"}
	got, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"), def)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestLoadJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a",`), 0o644))

	_, err := LoadJSON(path, []string{})
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
}

func TestSaveJSON_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(`["old","older","oldest"]`), 0o644))

	require.NoError(t, SaveJSON(path, []string{"new"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"new\"\n]\n", string(b))
}

func TestSaveJSON_NoHTMLEscaping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.json")
	in := []domain.Company{{Name: "A&B", URL: "https://x.test/?a=1&b=2"}}
	require.NoError(t, SaveJSON(path, in))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "A&B")
	assert.Contains(t, string(b), "a=1&b=2")
}

func TestLoadCompanies(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cs, err := LoadCompanies(filepath.Join(dir, "missing.json"))
		require.NoError(t, err)
		assert.Empty(t, cs)
	})

	t.Run("array of objects", func(t *testing.T) {
		path := filepath.Join(dir, "companies.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
  {"name": "Acme", "url": "http://x.test"},
  {"name": "", "url": "http://y.test"}
]`), 0o644))

		cs, err := LoadCompanies(path)
		require.NoError(t, err)
		require.Len(t, cs, 2)
		assert.Equal(t, domain.Company{Name: "Acme", URL: "http://x.test"}, cs[0])
		assert.False(t, cs[1].Valid())
	})
}

func TestSeenFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := SeenFile{Path: filepath.Join(t.TempDir(), "seen.json")}

	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, f.Save(ctx, []string{"b", "a"}))
	got, err = f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSeenFile_SaveEmptyWritesArray(t *testing.T) {
	f := SeenFile{Path: filepath.Join(t.TempDir(), "seen.json")}
	require.NoError(t, f.Save(context.Background(), nil))

	b, err := os.ReadFile(f.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(b))
}
