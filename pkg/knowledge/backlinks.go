package knowledge

import (
	"context"
	"strings"
)

// Backlink is a note that links to the requested note.
type Backlink struct {
	File string `json:"file"` // path relative to the knowledge root
	Path string `json:"path"` // absolute path
}

// Resolver finds notes that reference a given note name.
type Resolver struct {
	base *Base
}

// NewResolver creates a Resolver scanning base.
func NewResolver(base *Base) *Resolver {
	return &Resolver{base: base}
}

// FindBacklinks returns every note whose text contains [[name]] or [[name|,
// in walk order. The aliased form matches on its opening alone: a closing "]]"
// is not required. Partial names such as [[nameExtra]] do not match.
func (r *Resolver) FindBacklinks(ctx context.Context, name string) ([]Backlink, error) {
	targets := []string{WikiLink(name), AliasLinkPrefix(name)}

	backlinks := []Backlink{}
	err := r.base.Walk(ctx, func(note Note, content []byte) error {
		text := string(content)
		for _, target := range targets {
			if strings.Contains(text, target) {
				backlinks = append(backlinks, Backlink{File: note.RelPath, Path: note.AbsPath})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return backlinks, nil
}
