package render

import (
	"strings"

	"github.com/sky-flux/pll"
)

// Layout is the set of stickers visible in the diagram, ordered left to
// right as drawn.
type Layout struct {
	Left  [3]pll.Sticker `json:"left"`
	Right [3]pll.Sticker `json:"right"`
}

// Visible extracts the six side stickers a viewer sees. The corner at
// index 1 sits at the centre of the view and shows both its stickers.
func Visible(a pll.Arrangement) Layout {
	c, e := a.Corners, a.Edges
	return Layout{
		Left:  [3]pll.Sticker{c[0].Right, e[0].Color, c[1].Left},
		Right: [3]pll.Sticker{c[1].Right, e[1].Color, c[2].Left},
	}
}

// Text renders l and front as one line of colour initials, e.g.
// "BRG|OBR / BR". Useful where the terminal cannot show colour.
func Text(l Layout, front pll.Front) string {
	var b strings.Builder
	for _, s := range l.Left {
		b.WriteString(initial(s))
	}
	b.WriteByte('|')
	for _, s := range l.Right {
		b.WriteString(initial(s))
	}
	b.WriteString(" / ")
	b.WriteString(initial(front.Left))
	b.WriteString(initial(front.Right))
	return b.String()
}

func initial(s pll.Sticker) string {
	if !s.IsValid() {
		return "?"
	}
	return s.String()[:1]
}
