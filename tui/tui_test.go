package tui

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sky-flux/pll"
	"github.com/sky-flux/pll/render"
)

func newModel(t *testing.T, logs *bytes.Buffer) (Model, *pll.Session) {
	t.Helper()
	term := render.NewTerminal(render.Options{CellWidth: 2, CellHeight: 1})
	sess, err := pll.NewSession(pll.SessionConfig{
		Renderer: term,
		Rand:     rand.New(rand.NewSource(11)),
	})
	require.NoError(t, err)
	var logger *log.Logger
	if logs != nil {
		logger = log.New(logs, "", 0)
	}
	return New(sess, term, logger), sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyRune(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want rune
		ok   bool
	}{
		{runes("g"), 'g', true},
		{runes("q"), 'q', true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, pll.KeySkip, true},
		{runes("ab"), 0, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, 0, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, 0, false},
	}
	for _, tt := range tests {
		got, ok := keyRune(tt.msg)
		assert.Equal(t, tt.ok, ok, "%v", tt.msg)
		assert.Equal(t, tt.want, got, "%v", tt.msg)
	}
}

func TestUpdateMatchAdvances(t *testing.T) {
	var logs bytes.Buffer
	m, sess := newModel(t, &logs)
	prev := sess.Current().Label
	k, _ := sess.Required()

	next, cmd := m.Update(runes(string(k)))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, sess.Drawn())
	assert.Equal(t, prev, next.(Model).last)
	assert.Contains(t, logs.String(), sess.ID().String())
	assert.Contains(t, next.View(), "last: "+prev)
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	m, sess := newModel(t, nil)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	_, cmd = m.Update(runes("#"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, sess.Drawn())
}

func TestUpdateSpaceSkips(t *testing.T) {
	m, sess := newModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, sess.Drawn())
}

func TestUpdateQuit(t *testing.T) {
	var logs bytes.Buffer
	m, sess := newModel(t, &logs)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, pll.Terminated, sess.State())
	assert.Empty(t, m.View())
	assert.Contains(t, logs.String(), `"state":"Terminated"`)
	assert.Contains(t, logs.String(), `"label":"`+sess.Current().Label+`"`)
}

func TestUpdateCtrlC(t *testing.T) {
	var logs bytes.Buffer
	m, sess := newModel(t, &logs)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, pll.Terminated, sess.State())
	assert.Contains(t, logs.String(), "interrupted after 1 cases")
	assert.Contains(t, logs.String(), `"state":"Terminated"`)
}

func TestViewShowsFrame(t *testing.T) {
	m, _ := newModel(t, nil)
	v := m.View()
	assert.Contains(t, v, "PLL recognition")
	assert.Contains(t, v, "type aefghjnrstuvyz")
	assert.Contains(t, v, "q quits")
	assert.NotContains(t, v, "last:")
}
