package mutate

import (
	"strings"

	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// MoveLinear is the keyboard-driven single-step reorder.
//
//   - up/down swap the node with its previous/next sibling; no-op at the
//     boundary.
//   - right ("demote") requires a following sibling: the node is unshifted into
//     that sibling's children and the sibling is forced open. Rejected when the
//     extra depth would break the depth bound.
//   - left ("promote") requires a parent: the node is reinserted into the
//     parent's containing list at the parent's index, becoming the parent's
//     immediately-preceding sibling.
func MoveLinear(t []model.Node, id string, dir model.Direction) ([]model.Node, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return t, false
	}
	out := model.CloneTree(t)
	ctx, depth, ok := tree.FindContextWithDepth(&out, id)
	if !ok {
		return t, false
	}
	list := ctx.List
	i := ctx.Index

	switch dir {
	case model.DirectionUp:
		if i == 0 {
			return t, false
		}
		(*list)[i-1], (*list)[i] = (*list)[i], (*list)[i-1]
		return out, true

	case model.DirectionDown:
		if i >= len(*list)-1 {
			return t, false
		}
		(*list)[i], (*list)[i+1] = (*list)[i+1], (*list)[i]
		return out, true

	case model.DirectionRight:
		if i >= len(*list)-1 {
			return t, false
		}
		if depth+1+tree.SubtreeHeight((*list)[i])-1 >= model.MaxDepth {
			return t, false
		}
		moved := (*list)[i]
		*list = append((*list)[:i], (*list)[i+1:]...)
		sib := &(*list)[i] // the former following sibling, shifted into place
		sib.IsOpen = true
		sib.Children = append([]model.Node{moved}, sib.Children...)
		return out, true

	case model.DirectionLeft:
		if ctx.Parent == nil {
			return t, false
		}
		moved := (*list)[i]
		*list = append((*list)[:i], (*list)[i+1:]...)
		parentCtx, ok := tree.FindContext(&out, ctx.Parent.ID)
		if !ok {
			return t, false
		}
		insertAt(parentCtx.List, parentCtx.Index, moved)
		return out, true
	}
	return t, false
}
