package mutate

import (
	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// ToggleOpen flips IsOpen on exactly one node.
func ToggleOpen(t []model.Node, id string) ([]model.Node, bool) {
	out := model.CloneTree(t)
	ctx, ok := tree.FindContext(&out, id)
	if !ok {
		return t, false
	}
	ctx.Node.IsOpen = !ctx.Node.IsOpen
	return out, true
}

// SetAllOpen recursively sets IsOpen on every node.
func SetAllOpen(t []model.Node, open bool) []model.Node {
	out := model.CloneTree(t)
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for i := range nodes {
			nodes[i].IsOpen = open
			walk(nodes[i].Children)
		}
	}
	walk(out)
	return out
}

// EnsureOpen opens the target node if it is currently closed. Ancestors are
// not touched; opening them is the caller's call. The flag reports whether
// anything changed, so callers can persist only on change.
func EnsureOpen(t []model.Node, id string) ([]model.Node, bool) {
	out := model.CloneTree(t)
	ctx, ok := tree.FindContext(&out, id)
	if !ok || ctx.Node.IsOpen {
		return t, false
	}
	ctx.Node.IsOpen = true
	return out, true
}
