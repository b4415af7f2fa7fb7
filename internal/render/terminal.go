package render

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Stdout returns an ANSI-capable writer for os.Stdout.
func Stdout() io.Writer { return colorable.NewColorableStdout() }

// DetectOptions resolves a color mode ("auto", "always", "never") against the
// real terminal. Screen clearing is only enabled when both stdin and stdout
// are interactive, so piped sessions produce clean transcripts.
func DetectOptions(colorMode string, stdin, stdout *os.File) Options {
	outTTY := isatty.IsTerminal(stdout.Fd()) || isatty.IsCygwinTerminal(stdout.Fd())
	var color bool
	switch colorMode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		color = outTTY && os.Getenv("NO_COLOR") == ""
	}
	return Options{
		Color: color,
		Clear: outTTY && term.IsTerminal(int(stdin.Fd())),
	}
}
