package tree

import (
	"strings"

	"projectpad/internal/model"
)

// Context is the structural location of a node: the list that contains it, its
// index in that list, and its parent (nil for roots). List points into the tree
// the lookup ran against, so mutations through it edit that tree in place.
type Context struct {
	List   *[]model.Node
	Index  int
	Node   *model.Node
	Parent *model.Node
}

// FindContext locates id by depth-first pre-order search (parent before
// children, children in list order). In trees with duplicate ids — possible
// before normalization — the first match wins deterministically.
func FindContext(tree *[]model.Node, id string) (Context, bool) {
	ctx, _, ok := findContextDepth(tree, id)
	return ctx, ok
}

// FindContextWithDepth is FindContext plus the 0-based depth of the match.
func FindContextWithDepth(tree *[]model.Node, id string) (Context, int, bool) {
	return findContextDepth(tree, id)
}

func findContextDepth(tree *[]model.Node, id string) (Context, int, bool) {
	id = strings.TrimSpace(id)
	if tree == nil || id == "" {
		return Context{}, 0, false
	}
	var walk func(list *[]model.Node, parent *model.Node, depth int) (Context, int, bool)
	walk = func(list *[]model.Node, parent *model.Node, depth int) (Context, int, bool) {
		for i := range *list {
			n := &(*list)[i]
			if n.ID == id {
				return Context{List: list, Index: i, Node: n, Parent: parent}, depth, true
			}
			if ctx, d, ok := walk(&n.Children, n, depth+1); ok {
				return ctx, d, true
			}
		}
		return Context{}, 0, false
	}
	return walk(tree, nil, 0)
}

// SubtreeHeight is the longest path length (in nodes) from n down to its
// deepest leaf. A leaf has height 1.
func SubtreeHeight(n model.Node) int {
	max := 0
	for i := range n.Children {
		if h := SubtreeHeight(n.Children[i]); h > max {
			max = h
		}
	}
	return 1 + max
}

// IsDescendantOrSelf reports whether id names n or any node in n's subtree.
// Used to forbid dropping a subtree into itself.
func IsDescendantOrSelf(n model.Node, id string) bool {
	if n.ID == id {
		return true
	}
	for i := range n.Children {
		if IsDescendantOrSelf(n.Children[i], id) {
			return true
		}
	}
	return false
}

// OpenState classifies the whole tree for the tri-state expand/collapse-all
// toggle.
type OpenState int

const (
	OpenStateAllOpen OpenState = iota
	OpenStateAllClosed
	OpenStateMixed
)

// ComputeOpenState classifies the tree as all-open, all-closed, or mixed.
// Only nodes with children participate. A node under a closed ancestor counts
// as closed regardless of its own flag: an open flag the user cannot see does
// not contribute "open". A tree with no foldable nodes reads as all-open.
func ComputeOpenState(tree []model.Node) OpenState {
	anyOpen := false
	anyClosed := false
	var walk func(nodes []model.Node, visible bool)
	walk = func(nodes []model.Node, visible bool) {
		for i := range nodes {
			n := nodes[i]
			if len(n.Children) == 0 {
				continue
			}
			if visible && n.IsOpen {
				anyOpen = true
			} else {
				anyClosed = true
			}
			walk(n.Children, visible && n.IsOpen)
		}
	}
	walk(tree, true)

	switch {
	case anyOpen && anyClosed:
		return OpenStateMixed
	case anyClosed:
		return OpenStateAllClosed
	default:
		return OpenStateAllOpen
	}
}

// CollectSubtreeIDs returns the ids of the node with the given id plus all of
// its descendants, or nil if the id is absent.
func CollectSubtreeIDs(tree []model.Node, id string) map[string]bool {
	ctx, ok := FindContext(&tree, id)
	if !ok {
		return nil
	}
	ids := map[string]bool{}
	var walk func(n model.Node)
	walk = func(n model.Node) {
		ids[n.ID] = true
		for i := range n.Children {
			walk(n.Children[i])
		}
	}
	walk(*ctx.Node)
	return ids
}
