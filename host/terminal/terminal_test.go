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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/host/terminal"
	"github.com/jetsetilly/gopherhal/test"
)

func decode(dec *terminal.Decoder, s string) []terminal.Key {
	var keys []terminal.Key
	for _, c := range []byte(s) {
		if k, ok := dec.Decode(c); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestDecoder(t *testing.T) {
	dec := terminal.NewDecoder(nil)

	keys := decode(dec, "zx\x1b[A\x1b[D\r")
	test.DemandEquality(t, len(keys), 5)
	test.ExpectEquality(t, keys[0].Buttons, keypad.A)
	test.ExpectEquality(t, keys[1].Buttons, keypad.B)
	test.ExpectEquality(t, keys[2].Buttons, keypad.Up)
	test.ExpectEquality(t, keys[3].Buttons, keypad.Left)
	test.ExpectEquality(t, keys[4].Buttons, keypad.Start)

	// unrecognised keys and escape sequences are ignored
	keys = decode(dec, "k\x1bO\x1b[Zs")
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Buttons, keypad.R)

	keys = decode(dec, "q\x03")
	test.DemandEquality(t, len(keys), 2)
	test.ExpectSuccess(t, keys[0].Quit)
	test.ExpectSuccess(t, keys[1].Quit)
}

func TestCustomKeymap(t *testing.T) {
	dec := terminal.NewDecoder(terminal.Keymap{'j': keypad.Down})
	keys := decode(dec, "zj")
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Buttons, keypad.Down)
}

func TestHolder(t *testing.T) {
	h := terminal.NewHolder(2)
	test.ExpectEquality(t, h.Tick(), keypad.None)

	h.Press(keypad.A)
	test.ExpectEquality(t, h.Tick(), keypad.A)
	h.Press(keypad.B)
	test.ExpectEquality(t, h.Tick(), keypad.A|keypad.B)
	test.ExpectEquality(t, h.Tick(), keypad.B)
	test.ExpectEquality(t, h.Tick(), keypad.None)

	h.Press(keypad.All)
	test.ExpectEquality(t, h.Held(), keypad.All)
	h.Release()
	test.ExpectEquality(t, h.Held(), keypad.None)
}
