package tree

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"projectpad/internal/model"
)

// GenerateID returns proj-<suffix> where suffix is 8 chars of base32 (lowercase,
// no padding). 8 chars base32 ~= 40 bits (~1 trillion) of space. The result is
// not guaranteed unique; see GenerateUniqueID.
func GenerateID() (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return "proj-" + suffix, nil
}

// GenerateUniqueID generates ids until one absent from used is found, then
// reserves it in used. Retry is unbounded; exhausting the token space is
// astronomically unlikely.
func GenerateUniqueID(used map[string]bool) (string, error) {
	for {
		id, err := GenerateID()
		if err != nil {
			return "", err
		}
		if used[id] {
			continue
		}
		used[id] = true
		return id, nil
	}
}

// CollectIDs walks the full tree and returns the set of all in-use ids.
func CollectIDs(tree []model.Node) map[string]bool {
	used := map[string]bool{}
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for i := range nodes {
			id := strings.TrimSpace(nodes[i].ID)
			if id != "" {
				used[id] = true
			}
			walk(nodes[i].Children)
		}
	}
	walk(tree)
	return used
}

// NormalizeIDs repairs a tree loaded from untrusted storage: every node whose
// id is missing or already seen in this depth-first walk gets a fresh unique
// id, and ids carrying stray whitespace are trimmed in place. Lookups trim
// their query id, so an untrimmed stored id would make the node permanently
// unreachable. Persisted data may be hand-edited or corrupted, so this must
// run on every externally-sourced tree before it enters the engine.
//
// The input is not modified; the returned flag reports whether any repair
// occurred.
func NormalizeIDs(in []model.Node) ([]model.Node, bool, error) {
	out := model.CloneTree(in)
	used := CollectIDs(out)
	seen := map[string]bool{}
	changed := false

	var walk func(nodes []model.Node) error
	walk = func(nodes []model.Node) error {
		for i := range nodes {
			id := strings.TrimSpace(nodes[i].ID)
			if id == "" || seen[id] {
				fresh, err := GenerateUniqueID(used)
				if err != nil {
					return err
				}
				nodes[i].ID = fresh
				id = fresh
				changed = true
			} else if id != nodes[i].ID {
				nodes[i].ID = id
				changed = true
			}
			seen[id] = true
			if err := walk(nodes[i].Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(out); err != nil {
		return nil, false, err
	}
	return out, changed, nil
}
