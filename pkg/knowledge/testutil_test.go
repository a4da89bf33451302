package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeNotes creates files under root from a map of slash paths to contents.
func writeNotes(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

// addDanglingNote creates a .md symlink whose target does not exist, which the
// walker sees as a note that fails to read.
func addDanglingNote(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	if err := os.Symlink(filepath.Join(root, "missing-target"), path); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}
