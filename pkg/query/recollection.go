package query

import (
	"bytes"
	"encoding/json"

	"github.com/entrhq/mnemo/pkg/memory"
)

// TierText pairs a tier with its raw file text.
type TierText struct {
	Tier memory.Tier
	Text string
}

// Recollection is the result of Recall, kept in recall order
// (preferences, habits, workflows, session, recent).
type Recollection []TierText

// Tiers lists the tiers present, in order.
func (r Recollection) Tiers() []memory.Tier {
	tiers := make([]memory.Tier, 0, len(r))
	for _, tt := range r {
		tiers = append(tiers, tt.Tier)
	}
	return tiers
}

// MarshalJSON renders the recollection as a JSON object keyed by tier name,
// preserving recall order.
func (r Recollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tt := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(string(tt.Tier))
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(tt.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
