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
	"strings"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	lua "github.com/yuin/gopher-lua"
)

func (s *Script) bindIRQ() {
	tbl := s.newTable("irq", map[string]lua.LGFunction{
		"init":     s.irqInit,
		"handler":  s.irqHandler,
		"enable":   s.irqEnable,
		"disable":  s.irqDisable,
		"enabled":  s.irqEnabled,
		"pending":  s.irqPending,
		"master":   s.irqMaster,
		"vcount":   s.irqVCount,
		"name":     s.irqName,
		"dispatch": s.irqDispatch,
	})

	for src := range irq.NumSources {
		tbl.RawSetString(strings.ToUpper(src.String()), lua.LNumber(src))
	}
}

// checkSource accepts the interrupt source as a number or by name. Range
// checking of numbers is left to the controller.
func checkSource(L *lua.LState, n int) irq.Source {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		return irq.Source(int(v))
	case lua.LString:
		for src := range irq.NumSources {
			if strings.EqualFold(src.String(), string(v)) {
				return src
			}
		}
		L.ArgError(n, fmt.Sprintf("unknown interrupt source %q", string(v)))
	default:
		L.TypeError(n, lua.LTNumber)
	}
	return irq.NumSources
}

func (s *Script) irqInit(L *lua.LState) int {
	s.con.IRQ.Init()
	return 0
}

func (s *Script) irqHandler(L *lua.LState) int {
	src := checkSource(L, 1)
	fn := L.OptFunction(2, nil)

	var h irq.Handler
	if fn != nil {
		h = func() {
			s.L.Push(fn)
			s.L.Call(0, 0)
		}
	}

	if err := s.con.IRQ.SetHandler(src, h); err != nil {
		raise(L, err)
	}
	return 0
}

func (s *Script) irqEnable(L *lua.LState) int {
	if err := s.con.IRQ.Enable(checkSource(L, 1)); err != nil {
		raise(L, err)
	}
	return 0
}

func (s *Script) irqDisable(L *lua.LState) int {
	if err := s.con.IRQ.Disable(checkSource(L, 1)); err != nil {
		raise(L, err)
	}
	return 0
}

func (s *Script) irqEnabled(L *lua.LState) int {
	L.Push(lua.LBool(s.con.IRQ.Enabled(checkSource(L, 1))))
	return 1
}

func (s *Script) irqPending(L *lua.LState) int {
	L.Push(lua.LBool(s.con.IRQ.Pending(checkSource(L, 1))))
	return 1
}

func (s *Script) irqMaster(L *lua.LState) int {
	s.con.IRQ.SetMasterEnable(L.CheckBool(1))
	return 0
}

// irq.vcount(y) sets the reference scanline. irq.vcount() returns it.
func (s *Script) irqVCount(L *lua.LState) int {
	if L.GetTop() == 0 {
		L.Push(lua.LNumber(s.con.IRQ.ReferenceVCount()))
		return 1
	}
	s.con.IRQ.SetReferenceVCount(L.CheckInt(1))
	return 0
}

func (s *Script) irqName(L *lua.LState) int {
	L.Push(lua.LString(checkSource(L, 1).String()))
	return 1
}

// irq.dispatch(src) raises the source and dispatches it immediately. Returns
// true if the interrupt was serviced.
func (s *Script) irqDispatch(L *lua.LState) int {
	src := checkSource(L, 1)
	if !src.Valid() {
		raise(L, curated.Errorf(irq.InvalidSource, int(src)))
	}
	s.con.IRQ.Raise(src)
	L.Push(lua.LBool(s.con.IRQ.Dispatch(src)))
	return 1
}
