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
	"fmt"

	"github.com/jetsetilly/gopherhal/hardware/dma"
	lua "github.com/yuin/gopher-lua"
)

func (s *Script) bindDMA() {
	tbl := s.newTable("dma", map[string]lua.LGFunction{
		"copy":     s.dmaCopy,
		"fill":     s.dmaFill,
		"transfer": s.dmaTransfer,
		"stop":     s.dmaStop,
		"armed":    s.dmaArmed,
		"control":  s.dmaControl,
		"describe": s.dmaDescribe,
	})
	tbl.RawSetString("UNIT16", lua.LNumber(dma.Unit16))
	tbl.RawSetString("UNIT32", lua.LNumber(dma.Unit32))
}

// checkUnit returns the optional unit argument. The default unit is 32bit.
func checkUnit(L *lua.LState, n int) dma.Unit {
	return dma.Unit(L.OptInt(n, int(dma.Unit32)))
}

// dma.copy(channel, src, dst, length, [unit])
func (s *Script) dmaCopy(L *lua.LState) int {
	err := s.con.DMA.Copy(L.CheckInt(1), checkAddress(L, 2), checkAddress(L, 3), checkAddress(L, 4), checkUnit(L, 5))
	if err != nil {
		raise(L, err)
	}
	return 0
}

// dma.fill(channel, src, dst, length, [unit])
func (s *Script) dmaFill(L *lua.LState) int {
	err := s.con.DMA.Fill(L.CheckInt(1), checkAddress(L, 2), checkAddress(L, 3), checkAddress(L, 4), checkUnit(L, 5))
	if err != nil {
		raise(L, err)
	}
	return 0
}

// dma.transfer(channel, src, dst, count, control)
func (s *Script) dmaTransfer(L *lua.LState) int {
	ctrl := dma.Control(checkUint(L, 5, 16))
	err := s.con.DMA.Transfer(L.CheckInt(1), checkAddress(L, 2), checkAddress(L, 3), checkUint(L, 4, 17), ctrl)
	if err != nil {
		raise(L, err)
	}
	return 0
}

func (s *Script) dmaStop(L *lua.LState) int {
	if err := s.con.DMA.Stop(L.CheckInt(1)); err != nil {
		raise(L, err)
	}
	return 0
}

func (s *Script) dmaArmed(L *lua.LState) int {
	L.Push(lua.LBool(s.con.DMA.Armed(L.CheckInt(1))))
	return 1
}

func addressControl(L *lua.LState, name string) dma.AddressControl {
	for a := dma.Increment; a <= dma.Reload; a++ {
		if a.String() == name {
			return a
		}
	}
	L.RaiseError("unknown address control %q", name)
	return dma.Increment
}

func timing(L *lua.LState, name string) dma.Timing {
	for t := dma.Immediate; t <= dma.AtSpecial; t++ {
		if t.String() == name {
			return t
		}
	}
	L.RaiseError("unknown start timing %q", name)
	return dma.Immediate
}

// dma.control{dest=, source=, timing=, repeats=, word32=, irq=} returns the
// control word. The enable bit is set by dma.transfer().
func (s *Script) dmaControl(L *lua.LState) int {
	tbl := L.CheckTable(1)

	var ctrl dma.Control
	if v := tbl.RawGetString("dest"); v != lua.LNil {
		ctrl |= dma.DestControl(addressControl(L, lua.LVAsString(v)))
	}
	if v := tbl.RawGetString("source"); v != lua.LNil {
		ctrl |= dma.SourceControl(addressControl(L, lua.LVAsString(v)))
	}
	if v := tbl.RawGetString("timing"); v != lua.LNil {
		ctrl |= dma.StartTiming(timing(L, lua.LVAsString(v)))
	}

	flags := []struct {
		field string
		bit   dma.Control
	}{
		{field: "repeats", bit: dma.Repeat},
		{field: "word32", bit: dma.Word32},
		{field: "irq", bit: dma.IRQOnEnd},
	}
	for _, f := range flags {
		if lua.LVAsBool(tbl.RawGetString(f.field)) {
			ctrl |= f.bit
		}
	}

	L.Push(lua.LNumber(ctrl))
	return 1
}

func (s *Script) dmaDescribe(L *lua.LState) int {
	L.Push(lua.LString(fmt.Sprint(dma.Control(checkUint(L, 1, 16)))))
	return 1
}
