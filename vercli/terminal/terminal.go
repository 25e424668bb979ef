package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminalInput reports whether r is a terminal rather than a pipe or a
// file, i.e. reading from it would wait for someone to type.
func IsTerminalInput(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
