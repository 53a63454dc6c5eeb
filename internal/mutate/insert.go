// Package mutate holds the pure tree-editing operations. Every function takes
// a tree and returns a new tree; a rejected operation returns the input
// unchanged with changed=false. Nothing in here touches persistence or view
// state.
package mutate

import (
	"strings"

	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// Insert appends n to the root list (parentID == "") or to the end of the
// parent's children, forcing the parent open. Rejected when the parent is
// absent or already sits at the maximum depth.
func Insert(t []model.Node, parentID string, n model.Node) ([]model.Node, bool) {
	parentID = strings.TrimSpace(parentID)
	out := model.CloneTree(t)

	if parentID == "" {
		if tree.SubtreeHeight(n) > model.MaxDepth {
			return t, false
		}
		return append(out, n), true
	}

	ctx, depth, ok := tree.FindContextWithDepth(&out, parentID)
	if !ok {
		return t, false
	}
	if depth+1+tree.SubtreeHeight(n)-1 >= model.MaxDepth {
		return t, false
	}
	ctx.Node.IsOpen = true
	ctx.Node.Children = append(ctx.Node.Children, n)
	return out, true
}

// Remove deletes the node and its entire subtree from wherever it resides.
func Remove(t []model.Node, id string) ([]model.Node, bool) {
	id = strings.TrimSpace(id)
	out := model.CloneTree(t)
	ctx, ok := tree.FindContext(&out, id)
	if !ok {
		return t, false
	}
	*ctx.List = append((*ctx.List)[:ctx.Index], (*ctx.List)[ctx.Index+1:]...)
	return out, true
}

// RemoveMany deletes every node whose id is in ids, as a single edit. Removing
// a node removes its subtree with it, so ids that were descendants of another
// removed id are covered either way.
func RemoveMany(t []model.Node, ids map[string]bool) ([]model.Node, bool) {
	if len(ids) == 0 {
		return t, false
	}
	changed := false
	var filter func(nodes []model.Node) []model.Node
	filter = func(nodes []model.Node) []model.Node {
		var out []model.Node
		for i := range nodes {
			if ids[nodes[i].ID] {
				changed = true
				continue
			}
			n := nodes[i]
			n.Children = filter(n.Children)
			out = append(out, n)
		}
		return out
	}
	out := filter(model.CloneTree(t))
	if !changed {
		return t, false
	}
	return out, true
}
