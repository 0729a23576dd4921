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
	"github.com/jetsetilly/gopherhal/hardware/sram"
	lua "github.com/yuin/gopher-lua"
)

func (s *Script) bindMemory() {
	s.newTable("mem", map[string]lua.LGFunction{
		"read8":   s.memRead8,
		"read16":  s.memRead16,
		"read32":  s.memRead32,
		"write8":  s.memWrite8,
		"write16": s.memWrite16,
		"write32": s.memWrite32,
		"peek":    s.memPeek,
		"poke":    s.memPoke,
		"peekio":  s.memPeekIO,
		"pokeio":  s.memPokeIO,
	})

	tbl := s.newTable("sram", map[string]lua.LGFunction{
		"write": s.sramWrite,
		"read":  s.sramRead,
	})
	tbl.RawSetString("START", lua.LNumber(sram.Start))
	tbl.RawSetString("SIZE", lua.LNumber(sram.Size))
	tbl.RawSetString("OK", lua.LNumber(sram.CodeOK))
	tbl.RawSetString("TOO_LARGE", lua.LNumber(sram.CodeTooLarge))
	tbl.RawSetString("BEFORE_REGION", lua.LNumber(sram.CodeBeforeRegion))
	tbl.RawSetString("PAST_REGION", lua.LNumber(sram.CodePastRegion))
}

func (s *Script) memRead8(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Mem.Read8(checkAddress(L, 1))))
	return 1
}

func (s *Script) memRead16(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Mem.Read16(checkAddress(L, 1))))
	return 1
}

func (s *Script) memRead32(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Mem.Read32(checkAddress(L, 1))))
	return 1
}

func (s *Script) memWrite8(L *lua.LState) int {
	s.con.Mem.Write8(checkAddress(L, 1), uint8(checkUint(L, 2, 8)))
	return 0
}

func (s *Script) memWrite16(L *lua.LState) int {
	s.con.Mem.Write16(checkAddress(L, 1), uint16(checkUint(L, 2, 16)))
	return 0
}

func (s *Script) memWrite32(L *lua.LState) int {
	s.con.Mem.Write32(checkAddress(L, 1), checkUint(L, 2, 32))
	return 0
}

// mem.peek(address) reads a byte without side effects.
func (s *Script) memPeek(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Mem.Peek8(checkAddress(L, 1))))
	return 1
}

// mem.poke(address, value) writes a byte without side effects. ROM and BIOS
// can be written to.
func (s *Script) memPoke(L *lua.LState) int {
	s.con.Mem.Poke8(checkAddress(L, 1), uint8(checkUint(L, 2, 8)))
	return 0
}

// mem.peekio(offset) reads a register halfword without side effects.
func (s *Script) memPeekIO(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.IO.Peek16(checkUint(L, 1, 10))))
	return 1
}

// mem.pokeio(offset, value) writes a register halfword without side effects.
func (s *Script) memPokeIO(L *lua.LState) int {
	s.con.IO.Poke16(checkUint(L, 1, 10), uint16(checkUint(L, 2, 16)))
	return 0
}

// sram.write(address, data) returns the result code.
func (s *Script) sramWrite(L *lua.LState) int {
	err := s.con.SRAM.Write(checkAddress(L, 1), []uint8(L.CheckString(2)))
	L.Push(lua.LNumber(sram.Code(err)))
	return 1
}

// sram.read(address, length) returns the data and the result code. The data
// is nil if the code is not sram.CodeOK.
func (s *Script) sramRead(L *lua.LState) int {
	n := L.CheckInt(2)
	if n < 0 || n > sram.Size {
		L.Push(lua.LNil)
		L.Push(lua.LNumber(sram.CodeTooLarge))
		return 2
	}

	d := make([]uint8, n)
	err := s.con.SRAM.Read(d, checkAddress(L, 1))
	if err != nil {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LString(string(d)))
	}
	L.Push(lua.LNumber(sram.Code(err)))
	return 2
}
