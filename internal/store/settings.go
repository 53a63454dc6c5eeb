package store

import (
	"context"

	"github.com/goccy/go-json"
)

// Settings are the persisted view settings, stored as an independent value
// from the tree.
type Settings struct {
	// DecayEnabled turns on the opacity-decay view mode: sibling rows beyond
	// DecayAfter render progressively faded.
	DecayEnabled bool `json:"decayEnabled"`
	DecayAfter   int  `json:"decayAfter"`
}

// DefaultSettings is the fallback for an absent or malformed settings value.
func DefaultSettings() Settings {
	return Settings{DecayEnabled: false, DecayAfter: 3}
}

// LoadSettings reads the persisted settings, falling back to defaults on
// absence or parse failure.
func (s Store) LoadSettings(ctx context.Context) (Settings, error) {
	raw, ok, err := s.Get(ctx, KeySettings)
	if err != nil {
		return DefaultSettings(), err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	var out Settings
	if jerr := json.Unmarshal([]byte(raw), &out); jerr != nil {
		return DefaultSettings(), nil
	}
	if out.DecayAfter < 1 {
		out.DecayAfter = DefaultSettings().DecayAfter
	}
	return out, nil
}

// SaveSettings persists the settings under their stable key.
func (s Store) SaveSettings(ctx context.Context, st Settings) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.Set(ctx, KeySettings, string(b))
}
