package memory

import (
	"context"
	"fmt"
)

// Manager implements the tier rules on top of a Store: Remember writes both
// short-term tiers, Consolidate writes exactly one long-term tier, and Forget
// only ever rewrites short-term tiers.
type Manager struct {
	store Store
}

// NewManager creates a Manager over store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}


// Remember appends content to the session and recent tiers. Each append stamps
// its own header, so the two timestamps can differ.
func (m *Manager) Remember(ctx context.Context, content string) (string, error) {
	for _, tier := range ShortTermTiers {
		if err := m.store.Append(ctx, tier, content); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("remembered in short-term memory: %s", Preview(content)), nil
}

// Consolidate appends content to the long-term tier named by category,
// falling back to preferences for anything unrecognized.
func (m *Manager) Consolidate(ctx context.Context, content, category string) (string, error) {
	tier := ResolveCategory(category)
	if err := m.store.Append(ctx, tier, content); err != nil {
		return "", err
	}
	return fmt.Sprintf("consolidated into long-term memory [%s]: %s", tier, Preview(content)), nil
}

// Forget deletes every short-term line containing pattern (case-insensitive).
// An entry header is pruned only when this call emptied its body. Long-term tiers are never touched.
func (m *Manager) Forget(ctx context.Context, pattern string) (string, error) {
	for _, tier := range ShortTermTiers {
		err := m.store.Update(ctx, tier, func(text string) (string, error) {
			kept, _ := forgetLines(text, pattern)
			return kept, nil
		})
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("forgot memories containing %q", pattern), nil
}
