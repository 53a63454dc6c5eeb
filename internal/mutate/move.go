package mutate

import (
	"strings"

	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// CanPlace checks the depth bound for a prospective move: the dragged subtree,
// placed at the effective insertion depth (the target's depth for before/after,
// one deeper for inside), must not push any leaf to MaxDepth or beyond. It also
// covers the structural preconditions (both ids present, no self- or
// descendant-drop), so a true result means Move will not reject.
func CanPlace(t []model.Node, dragID, targetID string, pos model.Position) bool {
	dragID = strings.TrimSpace(dragID)
	targetID = strings.TrimSpace(targetID)
	if dragID == "" || targetID == "" || dragID == targetID {
		return false
	}
	dragCtx, ok := tree.FindContext(&t, dragID)
	if !ok {
		return false
	}
	if tree.IsDescendantOrSelf(*dragCtx.Node, targetID) {
		return false
	}
	_, targetDepth, ok := tree.FindContextWithDepth(&t, targetID)
	if !ok {
		return false
	}
	depth := targetDepth
	if pos == model.PositionInside {
		depth++
	}
	return depth+tree.SubtreeHeight(*dragCtx.Node)-1 < model.MaxDepth
}

// Move relocates the dragged node relative to the target. before/after insert
// into the target's containing list at the slot just before/after it; inside
// appends as the target's last child and forces the target open. Illegal moves
// (missing ids, self-target, descendant target, depth bound) return the input
// unchanged.
//
// The dragged node is removed before the insertion index is read, so "insert
// before/after the target" stays visually stable regardless of whether the
// source sat earlier or later in the same list.
func Move(t []model.Node, dragID, targetID string, pos model.Position) ([]model.Node, bool) {
	if !CanPlace(t, dragID, targetID, pos) {
		return t, false
	}

	out := model.CloneTree(t)
	dragCtx, ok := tree.FindContext(&out, strings.TrimSpace(dragID))
	if !ok {
		return t, false
	}
	moved := *dragCtx.Node
	*dragCtx.List = append((*dragCtx.List)[:dragCtx.Index], (*dragCtx.List)[dragCtx.Index+1:]...)

	// Re-find the target: removing the dragged node shifted indices, and the
	// target cannot have been inside the dragged subtree.
	targetCtx, ok := tree.FindContext(&out, strings.TrimSpace(targetID))
	if !ok {
		return t, false
	}

	switch pos {
	case model.PositionBefore:
		insertAt(targetCtx.List, targetCtx.Index, moved)
	case model.PositionAfter:
		insertAt(targetCtx.List, targetCtx.Index+1, moved)
	case model.PositionInside:
		targetCtx.Node.IsOpen = true
		targetCtx.Node.Children = append(targetCtx.Node.Children, moved)
	default:
		return t, false
	}
	return out, true
}

func insertAt(list *[]model.Node, i int, n model.Node) {
	if i < 0 {
		i = 0
	}
	if i > len(*list) {
		i = len(*list)
	}
	*list = append(*list, model.Node{})
	copy((*list)[i+1:], (*list)[i:])
	(*list)[i] = n
}
