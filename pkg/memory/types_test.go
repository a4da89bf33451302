package memory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierKind(t *testing.T) {
	for _, tier := range ShortTermTiers {
		assert.Equal(t, ShortTerm, tier.Kind())
	}
	for _, tier := range LongTermTiers {
		assert.Equal(t, LongTerm, tier.Kind())
	}
	assert.Equal(t, Kind(""), Tier("vectordb").Kind())
	assert.False(t, Tier("snapshot").Valid())
}

func TestTierPath(t *testing.T) {
	base := filepath.FromSlash("/mem")
	assert.Equal(t, filepath.Join(base, "long", "habits.md"), TierHabits.Path(base))
	assert.Equal(t, filepath.Join(base, "short", "recent.md"), TierRecent.Path(base))
}

func TestResolveCategory(t *testing.T) {
	tests := map[string]Tier{
		"preferences": TierPreferences,
		"habits":      TierHabits,
		"workflows":   TierWorkflows,
		"":            TierPreferences,
		"session":     TierPreferences,
		"Habits":      TierPreferences,
		"nonsense":    TierPreferences,
	}
	for in, want := range tests {
		assert.Equal(t, want, ResolveCategory(in), in)
	}
}

func TestIsCategory(t *testing.T) {
	for _, tier := range LongTermTiers {
		assert.True(t, IsCategory(string(tier)), tier)
	}
	assert.False(t, IsCategory("session"))
	assert.False(t, IsCategory("Habits"))
	assert.False(t, IsCategory("briefly"))
	assert.False(t, IsCategory(""))
}
