package render

import "github.com/sky-flux/pll"

// Terminal is a pll.Renderer that keeps the most recent frame for a
// view function to print.
type Terminal struct {
	opts   Options
	layout Layout
	front  pll.Front
	frame  string
}

var _ pll.Renderer = (*Terminal)(nil)

// NewTerminal creates a Terminal renderer.
func NewTerminal(opts Options) *Terminal {
	return &Terminal{opts: opts.withDefaults()}
}

// Render implements pll.Renderer.
func (t *Terminal) Render(a pll.Arrangement, front pll.Front) {
	t.layout = Visible(a)
	t.front = front
	t.frame = Diagram(t.layout, front, t.opts)
}

// Frame returns the last rendered diagram, or "" before the first Render.
func (t *Terminal) Frame() string {
	return t.frame
}

// Text returns the last frame as colour initials.
func (t *Terminal) Text() string {
	if t.frame == "" {
		return ""
	}
	return Text(t.layout, t.front)
}

// Layout returns the stickers of the last frame.
func (t *Terminal) Layout() Layout {
	return t.layout
}
