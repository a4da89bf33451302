// Package snapshot renders the long-term tiers into a single document that can
// be handed to a model in one read.
package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/entrhq/mnemo/pkg/memory"
)

// FileName is the snapshot file written under the memory base directory.
const FileName = "snapshot.md"

var timeNow = time.Now // injected for testability

var sectionTitles = map[memory.Tier]string{
	memory.TierPreferences: "Preferences",
	memory.TierHabits:      "Habits",
	memory.TierWorkflows:   "Workflows",
}

// TokenCounter estimates how many model tokens a text costs.
type TokenCounter interface {
	Count(text string) int
}

// Writer persists the rendered snapshot. *memory.FileStore satisfies it.
type Writer interface {
	WriteFile(ctx context.Context, path, text string) error
}

// Result describes a generated snapshot.
type Result struct {
	Path    string
	Content string
	Tokens  int // 0 when no TokenCounter is configured
}

// Builder aggregates the long-term tiers into the snapshot file.
type Builder struct {
	store   memory.Store
	writer  Writer
	path    string
	counter TokenCounter
}

// Option configures a Builder.
type Option func(*Builder)

// WithTokenCounter makes Build report the snapshot's token count.
func WithTokenCounter(c TokenCounter) Option {
	return func(b *Builder) {
		b.counter = c
	}
}

// NewBuilder creates a Builder that reads tiers from store and writes
// <base>/snapshot.md through writer.
func NewBuilder(store memory.Store, writer Writer, base string, opts ...Option) *Builder {
	b := &Builder{
		store:  store,
		writer: writer,
		path:   filepath.Join(base, FileName),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Path returns the snapshot file location.
func (b *Builder) Path() string {
	return b.path
}

// Build renders the snapshot and overwrites the snapshot file.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	content, err := b.Render(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := b.writer.WriteFile(ctx, b.path, content); err != nil {
		return Result{}, fmt.Errorf("snapshot: write %s: %w", b.path, err)
	}

	res := Result{Path: b.path, Content: content}
	if b.counter != nil {
		res.Tokens = b.counter.Count(content)
	}
	return res, nil
}

// Render produces the snapshot document without writing it.
func (b *Builder) Render(ctx context.Context) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Memory Snapshot\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n", memory.Timestamp(timeNow()))

	for _, tier := range memory.LongTermTiers {
		text, err := b.store.ReadAll(ctx, tier)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "\n## %s (%s)\n%s\n", sectionTitles[tier], tier, text)
	}
	return sb.String(), nil
}
