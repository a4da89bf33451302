// Package query answers questions against memory tiers and the knowledge base.
package query

import (
	"context"

	"github.com/entrhq/mnemo/pkg/knowledge"
	"github.com/entrhq/mnemo/pkg/memory"
)

// NoteMatch is one knowledge-base note that matched a search.
type NoteMatch struct {
	Title string `json:"title"`
	File  string `json:"file"` // path relative to the knowledge root
	Path  string `json:"path"` // absolute path
}

// Engine implements recall over memory tiers and keyword search over notes.
type Engine struct {
	store   memory.Store
	base    *knowledge.Base
	matcher Matcher
}

// Option configures an Engine.
type Option func(*Engine)

// WithMatcher replaces the default case-insensitive substring matcher.
func WithMatcher(m Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// NewEngine creates an Engine reading tiers from store and notes from base.
func NewEngine(store memory.Store, base *knowledge.Base, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		base:    base,
		matcher: SubstringMatcher{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recall loads every tier. With an empty query all five tiers are returned,
// empty ones included; otherwise only tiers whose whole text matches the
// query are returned, each with its complete text.
func (e *Engine) Recall(ctx context.Context, q string) (Recollection, error) {
	out := make(Recollection, 0, len(memory.AllTiers))
	for _, tier := range memory.AllTiers {
		text, err := e.store.ReadAll(ctx, tier)
		if err != nil {
			return nil, err
		}
		if q != "" && !e.matcher.Match(text, q) {
			continue
		}
		out = append(out, TierText{Tier: tier, Text: text})
	}
	return out, nil
}

// SearchNotes returns every knowledge-base note whose text matches q, in
// relative-path order. Notes that cannot be read are left out.
func (e *Engine) SearchNotes(ctx context.Context, q string) ([]NoteMatch, error) {
	results := []NoteMatch{}
	err := e.base.Walk(ctx, func(note knowledge.Note, content []byte) error {
		text := string(content)
		if !e.matcher.Match(text, q) {
			return nil
		}
		results = append(results, NoteMatch{
			Title: note.Title(text),
			File:  note.RelPath,
			Path:  note.AbsPath,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
