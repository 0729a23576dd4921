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

package keypad

import (
	"strings"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Buttons is a bit mask of buttons in the same layout as the KEYINPUT and
// KEYCNT registers.
type Buttons uint16

// List of buttons.
const (
	A Buttons = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L

	None Buttons = 0
	All  Buttons = addresses.KeyinputMask
)

var names = [...]string{"A", "B", "Select", "Start", "Right", "Left", "Up", "Down", "R", "L"}

func (b Buttons) String() string {
	if b&All == None {
		return "none"
	}
	s := strings.Builder{}
	for i, n := range names {
		if b&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(n)
		}
	}
	return s.String()
}

// Has returns true if all buttons in o are also in b.
func (b Buttons) Has(o Buttons) bool {
	return b&o == o
}

// Sentinel error patterns.
const (
	UnknownButton = "keypad: unknown button (%s)"
)

// ParseButton returns the button with the given name. The comparison is not
// case sensitive.
func ParseButton(name string) (Buttons, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return 1 << i, nil
		}
	}
	return None, curated.Errorf(UnknownButton, name)
}

// ParseButtons parses a list of button names separated by a plus sign. For
// example, "A+B+Start".
func ParseButtons(s string) (Buttons, error) {
	var b Buttons
	for _, n := range strings.Split(s, "+") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		v, err := ParseButton(n)
		if err != nil {
			return None, curated.Errorf("keypad: %v", err)
		}
		b |= v
	}
	return b, nil
}
