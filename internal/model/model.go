package model

// MaxDepth bounds the root-to-leaf depth of the tree. Roots sit at depth 0,
// so valid depths are 0..MaxDepth-1.
const MaxDepth = 5

// MaxTitleLen is the hard cap (in runes) applied to a title on rename commit.
// Titles loaded from storage are kept unclamped.
const MaxTitleLen = 36

// UnnamedTitle is stored when a rename commits an empty title.
const UnnamedTitle = "unnamed"

// Node is a single entry in the project tree. Children are ordered; the order
// is display and priority order. A node with no children is a leaf.
type Node struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IsOpen   bool   `json:"isOpen"`
	Children []Node `json:"children,omitempty"`
}

// Position says where a moved node lands relative to its target.
type Position string

const (
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
	PositionInside Position = "inside"
)

// Direction is a keyboard-driven single-step move.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := n
	out.Children = CloneTree(n.Children)
	return out
}

// CloneTree returns a deep copy of an ordered node list.
func CloneTree(tree []Node) []Node {
	if tree == nil {
		return nil
	}
	out := make([]Node, len(tree))
	for i := range tree {
		out[i] = tree[i].Clone()
	}
	return out
}
