package mutate

import (
	"strings"

	"projectpad/internal/model"
	"projectpad/internal/tree"
)

// RenameResult reports what a rename commit did. Excess is how many runes the
// trimmed input ran over the cap (0 when it fit); it is a side-channel for the
// transient UI advisory and is never stored on the node.
type RenameResult struct {
	Changed bool
	Title   string
	Excess  int
}

// Rename trims raw, substitutes the unnamed sentinel for an empty result, and
// hard-caps the stored title at model.MaxTitleLen runes.
func Rename(t []model.Node, id, raw string) ([]model.Node, RenameResult) {
	title := strings.TrimSpace(raw)
	excess := 0
	if r := []rune(title); len(r) > model.MaxTitleLen {
		excess = len(r) - model.MaxTitleLen
		title = string(r[:model.MaxTitleLen])
	}
	if title == "" {
		title = model.UnnamedTitle
	}

	out := model.CloneTree(t)
	ctx, ok := tree.FindContext(&out, id)
	if !ok {
		return t, RenameResult{}
	}
	if ctx.Node.Title == title {
		return t, RenameResult{Title: title, Excess: excess}
	}
	ctx.Node.Title = title
	return out, RenameResult{Changed: true, Title: title, Excess: excess}
}
