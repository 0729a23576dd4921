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

import "github.com/jetsetilly/gopherhal/hardware/keypad"

// key codes of interest.
const (
	keyCtrlC          = 3
	keyCarriageReturn = 13
	keyLineFeed       = 10
	keyEsc            = 27
	keyBackspace      = 127
	keyCtrlH          = 8

	escCursor = '['
)

const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// Key is the result of decoding input from the terminal.
type Key struct {
	Buttons keypad.Buttons
	Quit    bool
}

// Keymap maps single bytes to buttons.
type Keymap map[byte]keypad.Buttons

// DefaultKeymap returns a new instance of the default mapping. Cursor keys
// are not included because they are sent as escape sequences.
func DefaultKeymap() Keymap {
	return Keymap{
		'z':               keypad.A,
		'x':               keypad.B,
		'a':               keypad.L,
		's':               keypad.R,
		keyCarriageReturn: keypad.Start,
		keyLineFeed:       keypad.Start,
		keyBackspace:      keypad.Select,
		keyCtrlH:          keypad.Select,
	}
}

// Decoder turns a stream of bytes into Key values.
type Decoder struct {
	keys Keymap

	// progress through an escape sequence
	esc int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// A nil keymap means the default mapping.
func NewDecoder(keys Keymap) *Decoder {
	if keys == nil {
		keys = DefaultKeymap()
	}
	return &Decoder{keys: keys}
}

// Decode the next byte. The boolean return value is false if the byte does
// not complete a recognised key.
func (dec *Decoder) Decode(b byte) (Key, bool) {
	switch dec.esc {
	case 1:
		if b == escCursor {
			dec.esc = 2
			return Key{}, false
		}
		dec.esc = 0
		return Key{}, false
	case 2:
		dec.esc = 0
		switch b {
		case cursorUp:
			return Key{Buttons: keypad.Up}, true
		case cursorDown:
			return Key{Buttons: keypad.Down}, true
		case cursorForward:
			return Key{Buttons: keypad.Right}, true
		case cursorBackward:
			return Key{Buttons: keypad.Left}, true
		}
		return Key{}, false
	}

	switch b {
	case keyEsc:
		dec.esc = 1
		return Key{}, false
	case keyCtrlC, 'q':
		return Key{Quit: true}, true
	}

	if btn, ok := dec.keys[b]; ok {
		return Key{Buttons: btn}, true
	}

	return Key{}, false
}
