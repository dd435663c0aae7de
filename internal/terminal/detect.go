// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stream is an *os.File attached to a terminal.
// Buffers and pipes wrapped in other types are never terminals.
func IsTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StreamsInteractive reports whether both in and out are terminals.
func StreamsInteractive(in io.Reader, out io.Writer) bool {
	return IsTerminal(in) && IsTerminal(out)
}
