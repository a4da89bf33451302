// Package linking records memories that point into the knowledge base.
package linking

import (
	"context"
	"fmt"

	"github.com/entrhq/mnemo/pkg/knowledge"
	"github.com/entrhq/mnemo/pkg/memory"
)

// Bridge writes session memories annotated with a wiki-link to a note.
type Bridge struct {
	store memory.Store
}

// NewBridge creates a Bridge over store.
func NewBridge(store memory.Store) *Bridge {
	return &Bridge{store: store}
}

// Link appends "content [[note]]" to the session tier. Unlike Remember, the
// recent tier is not written.
func (b *Bridge) Link(ctx context.Context, content, note string) (string, error) {
	link := knowledge.WikiLink(note)
	if err := b.store.Append(ctx, memory.TierSession, content+" "+link); err != nil {
		return "", err
	}
	return fmt.Sprintf("remembered and linked to %s", link), nil
}
