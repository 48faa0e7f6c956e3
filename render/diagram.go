package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sky-flux/pll"
)

// Options sizes the diagram in terminal cells.
// Zero values produce sensible defaults; see field comments.
type Options struct {
	CellWidth  int // zero → 4
	CellHeight int // zero → 2
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 4
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 2
	}
	return o
}

// Width returns the diagram width in columns: six stickers and five gaps.
func (o Options) Width() int {
	o = o.withDefaults()
	return 6*o.CellWidth + 5
}

// Height returns the diagram height in rows: top, sticker row, and a
// double-height front.
func (o Options) Height() int {
	o = o.withDefaults()
	return 4 * o.CellHeight
}

// Diagram renders l and front as a coloured block diagram.
func Diagram(l Layout, front pll.Front, opts Options) string {
	opts = opts.withDefaults()
	w, h := opts.CellWidth, opts.CellHeight
	faceWidth := 3*w + 2

	top := block(pll.Yellow, opts.Width(), h)

	cells := make([]string, 0, 11)
	for i, s := range l.Left {
		if i > 0 {
			cells = append(cells, gap(h))
		}
		cells = append(cells, block(s, w, h))
	}
	cells = append(cells, gap(h))
	for i, s := range l.Right {
		if i > 0 {
			cells = append(cells, gap(h))
		}
		cells = append(cells, block(s, w, h))
	}
	side := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	fronts := lipgloss.JoinHorizontal(lipgloss.Top,
		block(front.Left, faceWidth, 2*h),
		gap(2*h),
		block(front.Right, faceWidth, 2*h),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, side, fronts)
}

// block is a w×h rectangle filled with the sticker's colour.
func block(s pll.Sticker, w, h int) string {
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex())).
		Render(strings.Join(lines, "\n"))
}

func gap(h int) string {
	return strings.TrimSuffix(strings.Repeat(" \n", h), "\n")
}
