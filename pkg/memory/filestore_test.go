package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, ts time.Time) {
	t.Helper()
	timeNow = func() time.Time { return ts }
	t.Cleanup(func() { timeNow = time.Now })
}

func TestFileStoreEnsureCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), "mem")
	fs, err := NewFileStore(base)
	require.NoError(t, err)

	require.NoError(t, fs.Ensure(context.Background(), TierHabits))
	require.NoError(t, fs.Ensure(context.Background(), TierHabits))

	for _, dir := range []string{"long", "short", "vectordb"} {
		info, err := os.Stat(filepath.Join(base, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
	_, err = os.Stat(TierHabits.Path(base))
	assert.True(t, errors.Is(err, os.ErrNotExist), "Ensure must not create the tier file")
}

func TestFileStoreReadMissingIsEmpty(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, err)

	for _, tier := range AllTiers {
		text, err := fs.ReadAll(context.Background(), tier)
		require.NoError(t, err)
		assert.Empty(t, text)
	}
}

func TestFileStoreAppend(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local))
	base := t.TempDir()
	fs, err := NewFileStore(base)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Append(ctx, TierSession, "first"))
	require.NoError(t, fs.Append(ctx, TierSession, "second"))

	text, err := fs.ReadAll(ctx, TierSession)
	require.NoError(t, err)
	assert.Equal(t, "\n## 2025-06-01 12:00:00\nfirst\n\n## 2025-06-01 12:00:00\nsecond\n", text)
	assert.FileExists(t, filepath.Join(base, "short", "session.md"))
}

func TestFileStoreUnknownTier(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	err = fs.Append(context.Background(), Tier("scratch"), "x")
	assert.ErrorIs(t, err, ErrUnknownTier)

	_, err = fs.ReadAll(context.Background(), Tier("scratch"))
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestFileStoreRewrite(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Append(ctx, TierRecent, "old"))
	require.NoError(t, fs.Rewrite(ctx, TierRecent, "replaced"))

	text, err := fs.ReadAll(ctx, TierRecent)
	require.NoError(t, err)
	assert.Equal(t, "replaced", text)
	assert.NoFileExists(t, TierRecent.Path(fs.Base())+".tmp")
}

func TestFileStoreUpdateSkipsMissingTier(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	called := false
	err = fs.Update(context.Background(), TierSession, func(s string) (string, error) {
		called = true
		return s, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.NoFileExists(t, TierSession.Path(fs.Base()))
}

func TestFileStoreUpdatePropagatesError(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, fs.Append(ctx, TierSession, "keep"))

	boom := errors.New("boom")
	err = fs.Update(ctx, TierSession, func(string) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	text, err := fs.ReadAll(ctx, TierSession)
	require.NoError(t, err)
	assert.Contains(t, text, "keep")
}

func TestFileStoreLockHonoursContext(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.Ensure(context.Background(), TierSession))

	unlock, err := fs.locks.lock(context.Background(), TierSession.Path(fs.Base()))
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = fs.Append(ctx, TierSession, "blocked")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Locks are per tier.
	require.NoError(t, fs.Append(context.Background(), TierRecent, "free"))
}

func TestFileStoreConcurrentAppend(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = fs.Append(ctx, TierSession, fmt.Sprintf("entry-%02d", i))
		}(i)
	}
	wg.Wait()

	text, err := fs.ReadAll(ctx, TierSession)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.Contains(t, text, fmt.Sprintf("\nentry-%02d\n", i))
	}
	assert.Equal(t, 20, strings.Count(text, "\n## "))
}

func TestFileStoreConcurrentForgetKeepsAppends(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	m := NewManager(fs)

	for i := 0; i < 10; i++ {
		require.NoError(t, fs.Append(ctx, TierSession, fmt.Sprintf("stale-%d", i)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = fs.Append(ctx, TierSession, fmt.Sprintf("fresh-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = m.Forget(ctx, "stale")
		}()
	}
	wg.Wait()

	text, err := fs.ReadAll(ctx, TierSession)
	require.NoError(t, err)
	assert.NotContains(t, text, "stale")
	for i := 0; i < 10; i++ {
		assert.Contains(t, text, fmt.Sprintf("fresh-%d", i))
	}
}
