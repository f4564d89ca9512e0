package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenDB_SaveIsMonotonic(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSeenDB(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, db.Save(ctx, []string{"b", "a"}))
	require.NoError(t, db.Save(ctx, []string{"a", "c"}))

	got, err = db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	n, err := CountSeen(db.Pool)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSeenDB_ReopenKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seen.db")

	db, err := OpenSeenDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Save(ctx, []string{"x"}))
	require.NoError(t, db.Close())

	db, err = OpenSeenDB(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}

func TestAcquireRunLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobwatch.lock")

	first, err := AcquireRunLock(path)
	require.NoError(t, err)

	_, err = AcquireRunLock(path)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, first.Release())

	again, err := AcquireRunLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
