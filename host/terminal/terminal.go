// This file is part of GopherHAL.
//
// GopherHAL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherHAL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherHAL.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinel error patterns.
const (
	NotTerminal = "terminal: %s is not a terminal"
)

// Terminal wraps the input and output files of a terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input file must be a terminal.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("terminal: %v", "input and output files are required")
	}
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotTerminal, input.Name())
	}

	t := &Terminal{
		input:  input,
		output: output,
	}

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(t.input.Fd(), &t.canAttr); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	return t, nil
}

// CBreakMode puts the terminal into cbreak mode. Signals are still generated
// by the terminal.
func (t *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// CanonicalMode returns the terminal to the mode it was in when NewTerminal()
// was called.
func (t *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// Width returns the width of the output terminal in characters. If the width
// cannot be determined the value of 80 is returned.
func (t *Terminal) Width() int {
	w, _, err := term.GetSize(int(t.output.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Print to the output terminal.
func (t *Terminal) Print(s string, a ...any) {
	t.output.WriteString(fmt.Sprintf(s, a...))
	t.output.Sync()
}

// ReadKeys reads from the terminal and sends decoded keys on the channel. The
// function returns when the input can no longer be read. The channel is closed
// on return.
//
// Should be run as a goroutine.
func (t *Terminal) ReadKeys(dec *Decoder, keys chan<- Key) {
	defer close(keys)

	b := make([]byte, 16)
	for {
		n, err := t.input.Read(b)
		if err != nil {
			logger.Logf(logger.Allow, "terminal", "input: %v", err)
			return
		}
		for _, c := range b[:n] {
			if k, ok := dec.Decode(c); ok {
				keys <- k
			}
		}
	}
}

// CleanUp returns the terminal to canonical mode and flushes any pending
// input.
func (t *Terminal) CleanUp() {
	if err := t.CanonicalMode(); err != nil {
		logger.Log(logger.Allow, "terminal", err)
	}
	if err := termios.Tcflush(t.input.Fd(), termios.TCIFLUSH); err != nil {
		logger.Logf(logger.Allow, "terminal", "flush: %v", err)
	}
}
