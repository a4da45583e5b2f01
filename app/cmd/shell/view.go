package shell

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/ribgsilva/notes/business/v1/screen"
)

const headerWidth = 40

type styles struct {
	r     *lipgloss.Renderer
	plain bool

	header lipgloss.Style
	card   lipgloss.Style
	swatch lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	alert  lipgloss.Style
}

// newStyles binds every style to a renderer for out. Plain forces the ASCII
// profile, which drops all colors.
func newStyles(out io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(out)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		r:     r,
		plain: plain,
		header: r.NewStyle().
			Bold(true).
			Width(headerWidth).
			Align(lipgloss.Center).
			Padding(0, 1),
		card: r.NewStyle().
			Foreground(lipgloss.Color("#333")).
			Width(headerWidth).
			Padding(0, 1),
		swatch: r.NewStyle(),
		label:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#888")),
		alert:  r.NewStyle().Foreground(lipgloss.Color("#e91e63")).Bold(true),
	}
}

func (s styles) renderHeader(h screen.Header) string {
	return s.header.
		Background(lipgloss.Color(h.BackgroundColor)).
		Foreground(lipgloss.Color(h.TextColor)).
		Render(h.Title)
}

func (s styles) renderSwatch(color string) string {
	if s.plain {
		return "(" + color + ")"
	}
	return s.swatch.Background(lipgloss.Color(color)).Render("  ")
}

// renderNote draws a card tinted with the note color.
func (s styles) renderNote(n note.Note) string {
	title := n.Title
	if s.plain {
		title = s.renderSwatch(n.Color) + " " + title
	}
	lines := []string{title}
	if n.Subtitle != "" {
		lines = append(lines, n.Subtitle)
	}
	lines = append(lines, n.Content)

	return s.card.
		Background(lipgloss.Color(n.Color)).
		Render(strings.Join(lines, "\n"))
}

func (s styles) renderAlert(msg string) string {
	return s.alert.Render("! " + msg)
}

func (m *Model) View() string {
	var b strings.Builder
	if m.route == screen.RouteAddNote {
		m.viewAddNote(&b)
	} else {
		m.viewHome(&b)
	}
	if m.alert != "" {
		b.WriteString(m.styles.renderAlert(m.alert) + "\n")
	}
	return b.String()
}

func (m *Model) viewHome(b *strings.Builder) {
	b.WriteString(m.styles.renderHeader(m.list.Header()) + "\n\n")
	b.WriteString(m.search.View() + "\n\n")

	if m.list.Empty() {
		b.WriteString(m.styles.muted.Render(screen.Placeholder) + "\n")
	}
	for _, n := range m.list.Visible() {
		b.WriteString(m.styles.renderNote(n) + "\n\n")
	}

	b.WriteString("\n" + m.styles.muted.Render("ctrl+n add note • ctrl+r refresh • esc quit") + "\n")
}

func (m *Model) viewAddNote(b *strings.Builder) {
	b.WriteString(m.styles.renderHeader(m.editor.Header()) + "\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View() + "\n")
	}

	b.WriteString("\n" + m.styles.label.Render("Select Note Color:") + "\n")
	swatches := make([]string, 0, len(note.Palette)+1)
	if m.focused == fieldColor {
		swatches = append(swatches, "> ")
	} else {
		swatches = append(swatches, "  ")
	}
	for _, c := range note.Palette {
		sw := m.styles.renderSwatch(c)
		if c == m.editor.Color {
			sw = "[" + sw + "]"
		} else {
			sw = " " + sw + " "
		}
		swatches = append(swatches, sw)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, swatches...) + "\n")

	b.WriteString("\n" + m.styles.muted.Render("tab next field • ←/→ color • ctrl+s submit • esc discard") + "\n")
}
