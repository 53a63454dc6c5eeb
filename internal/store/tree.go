package store

import (
	"context"

	"github.com/goccy/go-json"

	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// DefaultTree is what a fresh (or unrecoverable) store starts with. It goes
// through NormalizeIDs on load like everything else, which assigns the ids.
func DefaultTree() []model.Node {
	return []model.Node{
		{Title: "My first project", IsOpen: true},
	}
}

// LoadTree reads, parses, and normalizes the persisted tree. An absent or
// malformed value falls back to the default tree; that is recovery, not an
// error. repaired reports whether normalization (or the fallback) changed
// anything, so callers can re-persist the cleaned snapshot.
func (s Store) LoadTree(ctx context.Context) (t []model.Node, repaired bool, err error) {
	raw, ok, err := s.Get(ctx, KeyTree)
	if err != nil {
		return nil, false, err
	}

	var parsed []model.Node
	if ok {
		if jerr := json.Unmarshal([]byte(raw), &parsed); jerr != nil {
			parsed = DefaultTree()
			ok = false
		}
	} else {
		parsed = DefaultTree()
	}

	normalized, changed, err := tree.NormalizeIDs(parsed)
	if err != nil {
		return nil, false, err
	}
	return normalized, changed || !ok, nil
}

// SaveTree persists the tree snapshot under its stable key.
func (s Store) SaveTree(ctx context.Context, t []model.Node) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.Set(ctx, KeyTree, string(b))
}
