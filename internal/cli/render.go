package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"golang.org/x/term"
)

// NewMarkdownRenderer returns a glamour renderer for output written to w.
// Terminals get the dark style, anything else plain ASCII. If glamour cannot
// be set up, markdown is printed as is.
func NewMarkdownRenderer(w io.Writer, width int) func(string) string {
	style := styles.NoTTYStyle
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		style = styles.DarkStyle
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain
	}

	return func(text string) string {
		out, err := r.Render(text)
		if err != nil {
			return text
		}
		return out
	}
}
