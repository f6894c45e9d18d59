package console

import "github.com/charmbracelet/lipgloss"

// palette is a simple stylesheet of named lipgloss styles.
type palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func newPalette() *palette {
	return &palette{
		title: boldStyle("#7D56F4").MarginBottom(1),
		ok:    boldStyle("#04B575"),
		fail:  boldStyle("#FF0000"),
		warn:  fgStyle("#FFA500"),
		help:  fgStyle("#626262").Italic(true),
	}
}

func fgStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func boldStyle(fg string) lipgloss.Style {
	return fgStyle(fg).Bold(true)
}
