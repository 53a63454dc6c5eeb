package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"projectpad/internal/model"
)

// row is one visible line of the flattened tree.
type row struct {
	id          string
	title       string
	depth       int
	hasChildren bool
	open        bool
	// childrenVisible: the row has a child list rendered directly beneath it.
	// The drag machine narrows the nesting band for such rows.
	childrenVisible bool
	// siblingIdx is the row's rank among its siblings; drives opacity decay.
	siblingIdx int
}

// flattenTree walks the tree in display order, descending only into open
// nodes.
func flattenTree(nodes []model.Node) []row {
	var out []row
	var walk func(nodes []model.Node, depth int)
	walk = func(nodes []model.Node, depth int) {
		for i := range nodes {
			n := nodes[i]
			hasChildren := len(n.Children) > 0
			out = append(out, row{
				id:              n.ID,
				title:           n.Title,
				depth:           depth,
				hasChildren:     hasChildren,
				open:            n.IsOpen,
				childrenVisible: hasChildren && n.IsOpen,
				siblingIdx:      i,
			})
			if hasChildren && n.IsOpen {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
	return out
}

func (r row) displayTitle() string {
	t := strings.TrimSpace(r.title)
	if t == "" {
		return model.UnnamedTitle
	}
	return t
}

func (r row) twisty() string {
	if !r.hasChildren {
		return "  "
	}
	if r.open {
		return "▾ "
	}
	return "▸ "
}

// indentWidth is the left margin of a row's twisty column, in cells.
func (r row) indentWidth() int { return r.depth * 2 }

// decayLevel maps the row's sibling rank to a fade step: 0 keeps the normal
// style, 1 and 2 mute progressively.
func (r row) decayLevel(after int) int {
	if after < 1 {
		return 0
	}
	switch {
	case r.siblingIdx < after:
		return 0
	case r.siblingIdx < after*2:
		return 1
	default:
		return 2
	}
}

// renderRow draws one line: indent, twisty, title, optional advisory suffix.
func (m appModel) renderRow(r row, width int) string {
	indent := strings.Repeat(" ", r.indentWidth())
	line := indent + r.twisty()

	title := r.displayTitle()
	suffix := ""
	if w := m.sess.Warning; w != nil && w.ID == r.id {
		suffix = " " + styleWarning().Render("(+"+strconv.Itoa(w.Excess)+")")
	}

	if m.editing && m.sess.SelectedID == r.id {
		return xansi.Truncate(line+m.input.View(), width, "…")
	}

	avail := width - lipgloss.Width(line) - lipgloss.Width(suffix)
	if avail < 4 {
		avail = 4
	}
	title = runewidth.Truncate(title, avail, "…")

	st := lipgloss.NewStyle()
	switch {
	case m.sess.Dragging() && m.sess.DragID() == r.id:
		st = styleDragging()
	case r.id == m.sess.SelectedID:
		st = styleSelected()
	case m.settings.DecayEnabled:
		st = styleDecay(r.decayLevel(m.settings.DecayAfter))
	}

	out := line + st.Render(title) + suffix
	if r.id == m.sess.SelectedID && !m.editing {
		// Pad the highlight across the full row so selection reads as a bar.
		pad := width - lipgloss.Width(out)
		if pad > 0 {
			out += st.Render(strings.Repeat(" ", pad))
		}
	}
	return xansi.Truncate(out, width, "…")
}
