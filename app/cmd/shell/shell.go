// Package shell is the interactive terminal front end: a home screen listing
// and searching notes and an add note screen.
package shell

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
	"go.uber.org/zap"
)

// Notes is what the screens need from the note core.
type Notes interface {
	screen.Loader
	screen.Creator
}

type Config struct {
	In  io.Reader
	Out io.Writer
	// Plain renders without colors.
	Plain bool
}

// form fields, in tab order. The color row comes after the text inputs.
const (
	fieldTitle = iota
	fieldSubtitle
	fieldContent
	fieldColor
)

// Model is the bubbletea model for both screens.
type Model struct {
	ctx    context.Context
	log    *zap.SugaredLogger
	cfg    Config
	styles styles

	list   *screen.ListView
	editor *screen.Editor

	route      string
	needsFocus bool
	alert      string

	search  textinput.Model
	inputs  []textinput.Model
	focused int
}

func New(ctx context.Context, log *zap.SugaredLogger, notes Notes, cfg Config) *Model {
	m := &Model{
		ctx:    ctx,
		log:    log,
		cfg:    cfg,
		styles: newStyles(cfg.Out, cfg.Plain),
	}
	m.list = screen.NewListView(log, notes)
	m.editor = screen.NewEditor(notes, m)

	m.search = textinput.New()
	m.search.Placeholder = "Search notes by title..."
	m.search.CharLimit = 100
	m.search.Width = headerWidth

	for _, placeholder := range []string{"Title", "Subtitle (optional)", "Content"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 0
		in.Width = headerWidth
		m.inputs = append(m.inputs, in)
	}
	return m
}

// Run starts the terminal program and blocks until the user quits.
func (m *Model) Run() error {
	p := tea.NewProgram(m,
		tea.WithContext(m.ctx),
		tea.WithInput(m.cfg.In),
		tea.WithOutput(m.cfg.Out),
	)
	_, err := p.Run()
	return err
}

// Navigate implements screen.Navigator. Entering home schedules a reload.
func (m *Model) Navigate(route string) {
	m.route = route
	m.alert = ""
	if route == screen.RouteHome {
		m.needsFocus = true
		m.focusField(-1)
		m.search.Focus()
		return
	}
	m.search.Blur()
	m.focusField(fieldTitle)
}

func (m *Model) Init() tea.Cmd {
	m.Navigate(screen.RouteHome)
	m.refresh()
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.route == screen.RouteAddNote {
		cmd = m.updateAddNote(key)
	} else {
		cmd = m.updateHome(key)
	}

	if m.needsFocus {
		m.refresh()
	}
	return m, cmd
}

func (m *Model) updateHome(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		return tea.Quit
	case tea.KeyCtrlN:
		m.Navigate(screen.RouteAddNote)
		return textinput.Blink
	case tea.KeyCtrlR:
		m.needsFocus = true
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	m.list.SetQuery(m.search.Value())
	return cmd
}

func (m *Model) updateAddNote(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.editor.Discard()
		m.resetForm()
		return nil
	case tea.KeyCtrlS:
		m.submit()
		return nil
	case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
		m.focusField((m.focused + 1) % (fieldColor + 1))
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField((m.focused + fieldColor) % (fieldColor + 1))
		return nil
	}

	if m.focused == fieldColor {
		switch key.Type {
		case tea.KeyLeft:
			m.cycleColor(-1)
		case tea.KeyRight:
			m.cycleColor(1)
		}
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(key)
	m.editor.Title = m.inputs[fieldTitle].Value()
	m.editor.Subtitle = m.inputs[fieldSubtitle].Value()
	m.editor.Content = m.inputs[fieldContent].Value()
	return cmd
}

// updateInputs forwards non key messages, such as cursor blinks, to every input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.inputs)+1)

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.inputs {
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) submit() {
	created, err := m.editor.Submit(m.ctx)
	if err != nil {
		m.log.Errorw("add note", "ERROR", err)
		m.alert = note.UserMessage(err)
		return
	}
	m.log.Infow("add note", "id", created.Id)
	m.resetForm()
}

func (m *Model) refresh() {
	m.needsFocus = false
	m.alert = ""
	if err := m.list.Focus(m.ctx); err != nil {
		m.alert = note.UserMessage(err)
	}
}

// focusField focuses one form field, -1 blurs them all.
func (m *Model) focusField(i int) {
	m.focused = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
}

func (m *Model) cycleColor(step int) {
	current := 0
	for i, c := range note.Palette {
		if c == m.editor.Color {
			current = i
		}
	}
	n := len(note.Palette)
	if err := m.editor.SelectColor(note.Palette[(current+step+n)%n]); err != nil {
		m.alert = note.UserMessage(err)
	}
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	if m.route == screen.RouteAddNote {
		m.focusField(fieldTitle)
	}
}
