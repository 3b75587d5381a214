package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/davidbarts/indeedsearch/internal/render"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// stdoutWidth returns the width of the terminal on stdout, or 0 when stdout is not a
// terminal.
func stdoutWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// reportWidth resolves the configured width. Zero means the terminal width, less one
// column so lines never touch the right margin, falling back to render.DefaultWidth.
func reportWidth(configured int, terminalWidth func() int) int {
	if configured > 0 {
		return configured
	}
	if w := terminalWidth(); w > 1 {
		return w - 1
	}
	return render.DefaultWidth
}
