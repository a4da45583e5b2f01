package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
	persistence "github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/ribgsilva/notes/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCore(t *testing.T) (*note.Core, *persistence.Store) {
	t.Helper()
	s, err := storage.OpenBlob(context.Background(), "mem://", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	log := zap.NewNop().Sugar()
	st := persistence.NewStore(log, s)
	return note.NewCore(log, st), st
}

func newModel(core *note.Core) *Model {
	m := New(context.Background(), zap.NewNop().Sugar(), core, Config{Out: &bytes.Buffer{}, Plain: true})
	m.Init()
	return m
}

func press(m *Model, keys ...tea.KeyType) {
	for _, k := range keys {
		m.Update(tea.KeyMsg{Type: k})
	}
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestShellAddAndSearch(t *testing.T) {
	core, st := newCore(t)
	m := newModel(core)

	assert.Contains(t, m.View(), screen.Placeholder)

	press(m, tea.KeyCtrlN)
	assert.Equal(t, screen.RouteAddNote, m.route)
	assert.Contains(t, m.View(), "Add Note")

	typeText(m, "Grocery List")
	press(m, tea.KeyTab)
	typeText(m, "weekend")
	press(m, tea.KeyTab)
	typeText(m, "eggs")
	press(m, tea.KeyTab, tea.KeyRight)
	assert.Contains(t, m.View(), "[(#ffeb3b)]")
	press(m, tea.KeyCtrlS)

	assert.Equal(t, screen.RouteHome, m.route)
	assert.Contains(t, m.View(), "(#ffeb3b) Grocery List")

	press(m, tea.KeyCtrlN)
	assert.Empty(t, m.inputs[fieldTitle].Value())
	typeText(m, "Meeting Notes")
	press(m, tea.KeyTab, tea.KeyTab)
	typeText(m, "agenda")
	press(m, tea.KeyCtrlS)

	stored, err := st.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "#ffeb3b", stored[0].Color)
	assert.Equal(t, "weekend", stored[0].Subtitle)
	assert.Equal(t, note.DefaultColor, stored[1].Color)

	typeText(m, "groc")
	view := m.View()
	assert.Contains(t, view, "Grocery List")
	assert.NotContains(t, view, "Meeting Notes")

	typeText(m, "zzz")
	view = m.View()
	assert.Contains(t, view, screen.Placeholder)
	assert.NotContains(t, view, "Grocery List")
}

func TestShellAlerts(t *testing.T) {
	core, st := newCore(t)
	_, err := core.Create(context.Background(), note.NewNote{Title: "Groceries", Content: "eggs"})
	require.NoError(t, err)
	m := newModel(core)

	press(m, tea.KeyCtrlN, tea.KeyTab, tea.KeyTab)
	typeText(m, "eggs")
	press(m, tea.KeyCtrlS)
	assert.Equal(t, screen.RouteAddNote, m.route)
	assert.Contains(t, m.View(), "! "+note.MsgMissingFields)

	press(m, tea.KeyShiftTab, tea.KeyShiftTab)
	typeText(m, "Groceries")
	press(m, tea.KeyCtrlS)
	assert.Contains(t, m.View(), "! "+note.MsgDuplicate)
	assert.Equal(t, "Groceries", m.editor.Title)

	press(m, tea.KeyEsc)
	assert.Equal(t, screen.RouteHome, m.route)
	assert.NotContains(t, m.View(), "! ")

	press(m, tea.KeyCtrlN)
	assert.Empty(t, m.inputs[fieldTitle].Value())
	assert.Empty(t, m.inputs[fieldContent].Value())

	stored, err := st.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestShellRefreshOnFocus(t *testing.T) {
	core, _ := newCore(t)
	m := newModel(core)

	_, err := core.Create(context.Background(), note.NewNote{Title: "Elsewhere", Content: "added by another client"})
	require.NoError(t, err)
	assert.NotContains(t, m.View(), "Elsewhere")

	press(m, tea.KeyCtrlR)
	assert.Contains(t, m.View(), "Elsewhere")

	_, err = core.Create(context.Background(), note.NewNote{Title: "Later", Content: "again"})
	require.NoError(t, err)
	press(m, tea.KeyCtrlN, tea.KeyEsc)
	assert.Contains(t, m.View(), "Later")
}

func TestShellLongContent(t *testing.T) {
	core, st := newCore(t)
	m := newModel(core)

	content := strings.Repeat("lorem ipsum ", 20000)
	press(m, tea.KeyCtrlN)
	typeText(m, "Long")
	press(m, tea.KeyTab, tea.KeyTab)
	typeText(m, content)
	press(m, tea.KeyCtrlS)

	stored, err := st.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, content, stored[0].Content)
}

func TestShellQuit(t *testing.T) {
	core, _ := newCore(t)
	m := newModel(core)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStyles(t *testing.T) {
	var out bytes.Buffer

	plain := newStyles(&out, true)
	assert.NotContains(t, plain.renderHeader(screen.HomeHeader), "\x1b[")
	assert.Contains(t, plain.renderHeader(screen.HomeHeader), "Home")
	assert.Equal(t, "(#e91e63)", plain.renderSwatch("#e91e63"))

	colored := newStyles(&out, false)
	colored.r.SetColorProfile(termenv.TrueColor)
	header := colored.renderHeader(screen.HomeHeader)
	assert.Contains(t, header, "48;2;80;200;120")
	assert.Contains(t, header, "38;2;255;255;255")
	assert.Contains(t, colored.renderSwatch("#e91e63"), "48;2;233;30;99")
}
