// Package tui runs a pll.Session as an interactive terminal program.
package tui

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sky-flux/pll"
	"github.com/sky-flux/pll/render"
)

// Config configures Run.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	Seed    int64          // zero → time-seeded
	Options render.Options // diagram size
	Logger  *log.Logger    // nil → discard
}

// Model is the bubbletea model driving one session.
type Model struct {
	session *pll.Session
	term    *render.Terminal
	logger  *log.Logger
	styles  struct {
		title lipgloss.Style
		hint  lipgloss.Style
		last  lipgloss.Style
	}
	last string
	hint string
}

var _ tea.Model = Model{}

// New creates a Model for a session whose renderer is term.
func New(sess *pll.Session, term *render.Terminal, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := Model{session: sess, term: term, logger: logger}
	m.hint = "type " + sess.Table().Keys() + " · space reveals · q quits"
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	m.styles.hint = lipgloss.NewStyle().Faint(true)
	m.styles.last = lipgloss.NewStyle().Italic(true)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Key presses go straight to the session;
// ctrl+c quits like the quit key.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.session.Quit()
		m.logger.Printf("session %s: interrupted after %d cases", m.session.ID(), m.session.Drawn())
		m.logSnapshot()
		return m, tea.Quit
	}

	r, ok := keyRune(key)
	if !ok {
		return m, nil
	}
	prev := m.session.Current().Label
	res := m.session.OnKey(r)
	if res.Advanced {
		m.last = prev
		m.logger.Printf("session %s: %s -> %s (matched=%t)",
			m.session.ID(), prev, m.session.Current().Label, res.Matched)
	}
	if res.Quit {
		m.logger.Printf("session %s: quit after %d cases", m.session.ID(), m.session.Drawn())
		m.logSnapshot()
		return m, tea.Quit
	}
	return m, nil
}

// logSnapshot writes the final session state as one JSON line.
func (m Model) logSnapshot() {
	data, err := json.Marshal(m.session.Snapshot())
	if err != nil {
		m.logger.Printf("session %s: snapshot: %v", m.session.ID(), err)
		return
	}
	m.logger.Printf("session %s: final %s", m.session.ID(), data)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.session.State() == pll.Terminated {
		return ""
	}
	lines := []string{
		m.styles.title.Render("PLL recognition"),
		"",
		m.term.Frame(),
		"",
		m.styles.hint.Render(m.hint),
	}
	if m.last != "" {
		lines = append(lines, m.styles.last.Render("last: "+m.last))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// keyRune maps a key event to the single character the session consumes.
func keyRune(k tea.KeyMsg) (rune, bool) {
	switch k.Type {
	case tea.KeySpace:
		return pll.KeySkip, true
	case tea.KeyRunes:
		if len(k.Runes) == 1 && !k.Alt {
			return k.Runes[0], true
		}
	}
	return 0, false
}

// Run starts the trainer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sampler, err := pll.NewSampler(pll.SamplerConfig{
		Rand:         rng,
		RotationRand: rand.New(rand.NewSource(seed + 1)),
	})
	if err != nil {
		return err
	}
	term := render.NewTerminal(cfg.Options)
	sess, err := pll.NewSession(pll.SessionConfig{
		Sampler:  sampler,
		Renderer: term,
		Rand:     rng,
	})
	if err != nil {
		return err
	}

	m := New(sess, term, cfg.Logger)
	m.logger.Printf("session %s: started, seed %d", sess.ID(), seed)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
