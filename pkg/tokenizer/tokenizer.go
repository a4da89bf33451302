// Package tokenizer counts model tokens for text that is handed to an AI
// session, such as the memory snapshot.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

func init() {
	// Vocabularies come from the embedded copies; never download them.
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// Encoding is the BPE vocabulary used for counting.
const Encoding = "cl100k_base"

// Tokenizer counts tokens with a tiktoken encoding.
type Tokenizer struct {
	encoder *tiktoken.Tiktoken
}

// New loads the encoding from the embedded vocabulary. Callers may fall back
// to Approximate when it fails.
func New() (*Tokenizer, error) {
	enc, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", Encoding, err)
	}
	return &Tokenizer{encoder: enc}, nil
}

// Count returns the number of tokens in text.
func (t *Tokenizer) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(t.encoder.Encode(text, nil, nil))
}

// Approximate estimates tokens at roughly four bytes each.
type Approximate struct{}

// Count returns a rounded-up estimate of the tokens in text.
func (Approximate) Count(text string) int {
	return (len(text) + 3) / 4
}
