package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is a local file-system implementation of Store.
// Tier files live under <base>/long and <base>/short as plain markdown.
type FileStore struct {
	base  string
	locks *locker
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at base. Nothing is created on disk until
// the first write.
func NewFileStore(base string) (*FileStore, error) {
	if base == "" {
		return nil, fmt.Errorf("memory: base directory cannot be empty")
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("memory: abs dir: %w", err)
	}
	return &FileStore{base: abs, locks: newLocker()}, nil
}

// Base returns the absolute memory base directory.
func (fs *FileStore) Base() string {
	return fs.base
}

func (fs *FileStore) pathFor(tier Tier) (string, error) {
	if !tier.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return tier.Path(fs.base), nil
}

// Ensure creates the base, long-term, short-term and reserved vector directories
// plus the tier's own parent directory. It is idempotent.
func (fs *FileStore) Ensure(_ context.Context, tier Tier) error {
	path, err := fs.pathFor(tier)
	if err != nil {
		return err
	}
	dirs := []string{
		fs.base,
		filepath.Join(fs.base, string(LongTerm)),
		filepath.Join(fs.base, string(ShortTerm)),
		filepath.Join(fs.base, VectorDir),
		filepath.Dir(path),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("memory: init directory %s: %w", dir, err)
		}
	}
	return nil
}

// Append writes a new entry stamped with the current time at the end of the tier.
func (fs *FileStore) Append(ctx context.Context, tier Tier, content string) error {
	if err := fs.Ensure(ctx, tier); err != nil {
		return err
	}
	path, _ := fs.pathFor(tier)

	unlock, err := fs.locks.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("memory: append %s: %w", tier, err)
	}
	if _, err := f.WriteString(FormatEntry(timeNow(), content)); err != nil {
		_ = f.Close()
		return fmt.Errorf("memory: append %s: %w", tier, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("memory: append %s: %w", tier, err)
	}
	return nil
}

// ReadAll returns the tier text. A tier that was never written reads as "".
func (fs *FileStore) ReadAll(_ context.Context, tier Tier) (string, error) {
	path, err := fs.pathFor(tier)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("memory: read %s: %w", tier, err)
	}
	return string(b), nil
}

// Rewrite atomically replaces the tier text via a temporary file and rename.
func (fs *FileStore) Rewrite(ctx context.Context, tier Tier, text string) error {
	if err := fs.Ensure(ctx, tier); err != nil {
		return err
	}
	path, _ := fs.pathFor(tier)

	unlock, err := fs.locks.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	return writeAtomic(path, text)
}

// Update applies fn to the current tier text and rewrites the result, all under
// one lock so concurrent appends are not lost. Missing tiers are left alone.
func (fs *FileStore) Update(ctx context.Context, tier Tier, fn func(string) (string, error)) error {
	path, err := fs.pathFor(tier)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	unlock, err := fs.locks.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("memory: read %s: %w", tier, err)
	}
	updated, err := fn(string(b))
	if err != nil {
		return err
	}
	if updated == string(b) {
		return nil
	}
	return writeAtomic(path, updated)
}

// WriteFile atomically replaces an arbitrary file under the store's locking discipline.
func (fs *FileStore) WriteFile(ctx context.Context, path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("memory: init directory %s: %w", filepath.Dir(path), err)
	}
	unlock, err := fs.locks.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()
	return writeAtomic(path, text)
}

func writeAtomic(path, text string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		return fmt.Errorf("memory: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("memory: atomic rename %s: %w", path, err)
	}
	return nil
}
