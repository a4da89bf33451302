package knowledge

import (
	"fmt"

	"github.com/gobwas/glob"
)

// PatternMatcher decides which relative note paths a walk visits.
type PatternMatcher struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
}

// NewPatternMatcher compiles include and exclude glob patterns. Patterns are
// matched against slash-separated paths relative to the knowledge root, and
// "**" crosses directory boundaries.
func NewPatternMatcher(include, exclude []string) (*PatternMatcher, error) {
	pm := &PatternMatcher{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern '%s': %w", pattern, err)
		}
		pm.includePatterns = append(pm.includePatterns, g)
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
		pm.excludePatterns = append(pm.excludePatterns, g)
	}

	return pm, nil
}

// IsIncluded returns true if relPath passes the pattern rules.
func (pm *PatternMatcher) IsIncluded(relPath string) bool {
	if pm == nil {
		return true
	}

	// Exclude patterns take precedence
	for _, pattern := range pm.excludePatterns {
		if pattern.Match(relPath) {
			return false
		}
	}

	// No include patterns means everything not excluded
	if len(pm.includePatterns) == 0 {
		return true
	}

	for _, pattern := range pm.includePatterns {
		if pattern.Match(relPath) {
			return true
		}
	}

	return false
}
