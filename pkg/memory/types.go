package memory

import (
	"errors"
	"path/filepath"
)

// ErrUnknownTier is returned when a tier name is not one of the five known tiers.
var ErrUnknownTier = errors.New("memory: unknown tier")

// Kind groups tiers by lifetime.
type Kind string

const (
	ShortTerm Kind = "short"
	LongTerm  Kind = "long"
)

// Tier names one memory file.
type Tier string

const (
	TierPreferences Tier = "preferences"
	TierHabits      Tier = "habits"
	TierWorkflows   Tier = "workflows"
	TierSession     Tier = "session"
	TierRecent      Tier = "recent"
)

// DefaultCategory is the long-term tier used when a category is not recognized.
const DefaultCategory = TierPreferences

// VectorDir is reserved for an embedding index. Nothing reads or writes it yet.
const VectorDir = "vectordb"

var (
	// AllTiers lists every tier in recall order.
	AllTiers = []Tier{TierPreferences, TierHabits, TierWorkflows, TierSession, TierRecent}

	// LongTermTiers are the consolidation categories, in snapshot order.
	LongTermTiers = []Tier{TierPreferences, TierHabits, TierWorkflows}

	// ShortTermTiers receive Remember writes and are the only tiers Forget touches.
	ShortTermTiers = []Tier{TierSession, TierRecent}
)

// Kind reports whether the tier is short- or long-term. Unknown tiers report "".
func (t Tier) Kind() Kind {
	switch t {
	case TierSession, TierRecent:
		return ShortTerm
	case TierPreferences, TierHabits, TierWorkflows:
		return LongTerm
	default:
		return ""
	}
}

// Valid reports whether t is one of the five known tiers.
func (t Tier) Valid() bool {
	return t.Kind() != ""
}

// Path returns the tier file location under the memory base directory.
func (t Tier) Path(base string) string {
	return filepath.Join(base, string(t.Kind()), string(t)+".md")
}

// IsCategory reports whether category names a long-term tier exactly.
func IsCategory(category string) bool {
	return Tier(category).Kind() == LongTerm
}

// ResolveCategory maps a user-supplied category onto a long-term tier.
// Anything unrecognized, including the empty string, resolves to DefaultCategory.
func ResolveCategory(category string) Tier {
	if IsCategory(category) {
		return Tier(category)
	}
	return DefaultCategory
}
