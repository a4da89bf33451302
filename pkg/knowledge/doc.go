// Package knowledge reads an external tree of markdown notes (the knowledge
// base). It never writes to the tree.
//
// Notes are addressed by their absolute path and by a slash-separated path
// relative to the knowledge-base root. Notes cross-reference each other with
// wiki-links of the form [[Name]] or [[Name|Alias]].
package knowledge
