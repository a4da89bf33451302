package knowledge

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Base is a read-only view over a knowledge-base directory tree.
type Base struct {
	root    string
	matcher *PatternMatcher
}

// Option configures a Base.
type Option func(*Base)

// WithPatternMatcher restricts walks to paths accepted by pm.
func WithPatternMatcher(pm *PatternMatcher) Option {
	return func(b *Base) {
		b.matcher = pm
	}
}

// NewBase creates a Base rooted at root. The root does not need to exist.
func NewBase(root string, opts ...Option) (*Base, error) {
	if root == "" {
		return nil, fmt.Errorf("knowledge: root directory cannot be empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("knowledge: abs dir: %w", err)
	}
	b := &Base{root: abs}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Root returns the absolute knowledge-base root.
func (b *Base) Root() string {
	return b.root
}

// VisitFunc is called for every readable note with its full content.
// Returning an error stops the walk and is returned from Walk.
type VisitFunc func(note Note, content []byte) error

// Walk visits every *.md file under the root in lexical order. Entries that
// cannot be listed or read are skipped, so a walk over a partly unreadable tree
// still reports everything it could read. A missing root yields no notes.
func (b *Base) Walk(ctx context.Context, visit VisitFunc) error {
	if _, err := os.Stat(b.root); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			slog.Debug("knowledge: skipping unreadable entry", "path", path, "err", err)
			if d != nil && d.IsDir() && path != b.root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != NoteExt {
			return nil
		}

		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !b.matcher.IsIncluded(rel) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			slog.Debug("knowledge: skipping unreadable note", "path", path, "err", err)
			return nil
		}
		return visit(Note{AbsPath: path, RelPath: rel}, content)
	})
}
