package pll

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Keys with a fixed meaning in every session.
const (
	KeySkip = ' ' // reveal: advance without a match
	KeyQuit = 'q'
)

// Front is the pair of front-face colours drawn below the last layer.
type Front struct {
	Left  Sticker `json:"left"`
	Right Sticker `json:"right"`
}

// Fronts are the four front-face pairs a case may be shown with.
var Fronts = [4]Front{
	{Blue, Red},
	{Red, Green},
	{Green, Orange},
	{Orange, Blue},
}

// Renderer draws an arrangement. The session never reads anything back.
type Renderer interface {
	Render(a Arrangement, front Front)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(a Arrangement, front Front)

// Render calls f(a, front).
func (f RendererFunc) Render(a Arrangement, front Front) {
	f(a, front)
}

// Result reports what a single OnKey call did.
type Result struct {
	Matched  bool // key consumed the next required character
	Advanced bool // a new case was drawn
	Quit     bool // session is now Terminated
}

// SessionConfig configures a Session.
// Zero values produce sensible defaults; see field comments.
type SessionConfig struct {
	Sampler  *Sampler // nil → NewSampler(SamplerConfig{Rand: Rand})
	Renderer Renderer // nil → nothing is drawn
	Rand     Rand     // nil → the sampler's case source; drives front-face choice
}

// Snapshot is a point-in-time view of a Session, suitable for logging.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	State     State     `json:"state"`
	Drawn     int       `json:"drawn"`
	Current   Draw      `json:"current"`
	Canonical string    `json:"canonical"`
	Remaining string    `json:"remaining"`
	Front     Front     `json:"front"`
}

// Session tracks recognition of the case currently on screen.
type Session struct {
	id        uuid.UUID
	sampler   *Sampler
	renderer  Renderer
	rng       Rand
	state     State
	remaining string
	canonical string
	current   Draw
	front     Front
	drawn     int
}

// NewSession creates a Session and draws its first case.
func NewSession(cfg SessionConfig) (*Session, error) {
	s := cfg.Sampler
	if s == nil {
		var err error
		s, err = NewSampler(SamplerConfig{Rand: cfg.Rand})
		if err != nil {
			return nil, err
		}
	}
	if s.table == nil {
		return nil, ErrNoSampler
	}
	rng := cfg.Rand
	if rng == nil {
		rng = s.rng
	}

	sess := &Session{
		id:       uuid.New(),
		sampler:  s,
		renderer: cfg.Renderer,
		rng:      rng,
	}
	sess.StartNewCase()
	return sess, nil
}

// StartNewCase draws a case, resolves its recognition key and hands the
// arrangement to the renderer. Only the first character of the canonical
// label is required, so Ga and Gb are both recognised by "g".
func (s *Session) StartNewCase() {
	d := s.sampler.Draw()
	s.current = d
	s.canonical = s.sampler.table.Canonical(d.Label)
	s.remaining = string(s.sampler.table.Key(d.Label))
	s.front = Fronts[s.rng.Intn(len(Fronts))]
	s.state = AwaitingInput
	s.drawn++
	if s.renderer != nil {
		s.renderer.Render(d.Arrangement, s.front)
	}
}

// OnKey consumes one keystroke. A key equal to the next required
// character is popped; once nothing remains, or on KeySkip, a new case is
// drawn. KeyQuit terminates the session. Other keys are ignored. Once
// Terminated, OnKey does nothing.
func (s *Session) OnKey(key rune) Result {
	var res Result
	if s.state == Terminated {
		return res
	}

	if next, ok := s.Required(); ok && key == next {
		s.remaining = strings.TrimPrefix(s.remaining, string(next))
		res.Matched = true
	}
	if s.remaining == "" || key == KeySkip {
		s.StartNewCase()
		res.Advanced = true
	}
	if key == KeyQuit {
		s.state = Terminated
		res.Quit = true
	}
	return res
}

// Quit terminates the session without a keystroke, e.g. on an interrupt.
func (s *Session) Quit() {
	s.state = Terminated
}

// Required returns the next character the user must type.
func (s *Session) Required() (rune, bool) {
	if s.remaining == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.remaining)
	return r, true
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the session's lifecycle stage.
func (s *Session) State() State { return s.state }

// Remaining returns the characters still to be typed for the current case.
func (s *Session) Remaining() string { return s.remaining }

// Current returns the draw on screen.
func (s *Session) Current() Draw { return s.current }

// Canonical returns the alias-resolved label of the current case.
func (s *Session) Canonical() string { return s.canonical }

// Front returns the front-face colours the current case is shown with.
func (s *Session) Front() Front { return s.front }

// Drawn returns how many cases this session has shown.
func (s *Session) Drawn() int { return s.drawn }

// Table returns the case table the session draws from.
func (s *Session) Table() *Table { return s.sampler.table }

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.id,
		State:     s.state,
		Drawn:     s.drawn,
		Current:   s.current,
		Canonical: s.canonical,
		Remaining: s.remaining,
		Front:     s.front,
	}
}
