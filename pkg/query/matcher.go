package query

import "strings"

// Matcher decides whether a body of text is relevant to a query. Recall and
// note search only talk to this interface, so a ranking or embedding-backed
// implementation can replace keyword matching without touching callers.
type Matcher interface {
	Match(text, query string) bool
}

// SubstringMatcher matches when query occurs anywhere in text, ignoring case.
type SubstringMatcher struct{}

// Match implements Matcher.
func (SubstringMatcher) Match(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
