package memory

import "context"

// Store is the read/write interface for tier files.
type Store interface {
	// Ensure creates the memory directory layout and the tier's parent directory.
	Ensure(ctx context.Context, tier Tier) error
	// Append adds a new timestamped entry at the end of the tier.
	Append(ctx context.Context, tier Tier, content string) error
	// ReadAll returns the raw tier text, or "" when the tier has never been written.
	ReadAll(ctx context.Context, tier Tier) (string, error)
	// Rewrite replaces the whole tier text.
	Rewrite(ctx context.Context, tier Tier, text string) error
	// Update reads, transforms and rewrites a tier while holding its write lock.
	// fn is not called when the tier file does not exist.
	Update(ctx context.Context, tier Tier, fn func(text string) (string, error)) error
}
