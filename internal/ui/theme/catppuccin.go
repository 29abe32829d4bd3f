package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtext0 = lipgloss.Color("#a6adc8")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
)

// Styles is the palette bound to one output. Colors are dropped when the
// output is not a terminal.
type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	OK    lipgloss.Style
	Hot   lipgloss.Style
	Bad   lipgloss.Style
}

func For(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title: r.NewStyle().Foreground(Sapphire).Bold(true),
		Muted: r.NewStyle().Foreground(Subtext0),
		OK:    r.NewStyle().Foreground(Green).Bold(true),
		Hot:   r.NewStyle().Foreground(Peach).Bold(true),
		Bad:   r.NewStyle().Foreground(Red).Bold(true),
	}
}
