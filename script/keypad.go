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

package script

import (
	"strings"

	"github.com/jetsetilly/gopherhal/hardware/keypad"
	lua "github.com/yuin/gopher-lua"
)

func (s *Script) bindKeypad() {
	key := s.newTable("key", map[string]lua.LGFunction{
		"update":   s.keyUpdate,
		"held":     s.keyHeld,
		"pressed":  s.keyPressed,
		"released": s.keyReleased,
		"irq_all":  s.keyIRQAll,
		"irq_any":  s.keyIRQAny,
		"irq_off":  s.keyIRQOff,
		"parse":    s.keyParse,
		"name":     s.keyName,
	})

	for i := range 10 {
		b := keypad.Buttons(1 << i)
		key.RawSetString(strings.ToUpper(b.String()), lua.LNumber(b))
	}
	key.RawSetString("NONE", lua.LNumber(keypad.None))
	key.RawSetString("ALL", lua.LNumber(keypad.All))

	s.newTable("input", map[string]lua.LGFunction{
		"set":   s.inputSet,
		"lines": s.inputLines,
		"get":   s.inputGet,
	})
}

// checkButtons accepts buttons as a mask or as a string of button names
// joined with '+'.
func checkButtons(L *lua.LState, n int) keypad.Buttons {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return keypad.Buttons(int(v)) & keypad.All
	case lua.LString:
		b, err := keypad.ParseButtons(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return b
	default:
		L.TypeError(n, lua.LTNumber)
	}
	return keypad.None
}

// pushButtons pushes the buttons as a number. If a mask argument is present
// then a boolean is pushed instead, indicating whether all the buttons in the
// mask are in the buttons.
func pushButtons(L *lua.LState, b keypad.Buttons) int {
	if L.GetTop() >= 1 {
		L.Push(lua.LBool(b.Has(checkButtons(L, 1))))
		return 1
	}
	L.Push(lua.LNumber(b))
	return 1
}

func (s *Script) keyUpdate(L *lua.LState) int {
	s.con.Keypad.Update()
	return 0
}

func (s *Script) keyHeld(L *lua.LState) int {
	return pushButtons(L, s.con.Keypad.Held())
}

func (s *Script) keyPressed(L *lua.LState) int {
	return pushButtons(L, s.con.Keypad.Pressed())
}

func (s *Script) keyReleased(L *lua.LState) int {
	return pushButtons(L, s.con.Keypad.Released())
}

func (s *Script) keyIRQAll(L *lua.LState) int {
	s.con.Keypad.IRQEnableAll(checkButtons(L, 1))
	return 0
}

func (s *Script) keyIRQAny(L *lua.LState) int {
	s.con.Keypad.IRQEnableAny(checkButtons(L, 1))
	return 0
}

func (s *Script) keyIRQOff(L *lua.LState) int {
	s.con.Keypad.IRQDisable()
	return 0
}

func (s *Script) keyParse(L *lua.LState) int {
	b, err := keypad.ParseButtons(L.CheckString(1))
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LNumber(b))
	return 1
}

func (s *Script) keyName(L *lua.LState) int {
	L.Push(lua.LString(checkButtons(L, 1).String()))
	return 1
}

// input.set(buttons) holds the buttons and releases all others.
func (s *Script) inputSet(L *lua.LState) int {
	s.con.SetKeys(checkButtons(L, 1))
	return 0
}

// input.lines(raw) drives the keypad lines with an active low value.
func (s *Script) inputLines(L *lua.LState) int {
	s.con.SetKeyLines(uint16(checkUint(L, 1, 16)))
	return 0
}

// input.get() returns the buttons currently held on the keypad lines.
func (s *Script) inputGet(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Keypad.Lines()))
	return 1
}
