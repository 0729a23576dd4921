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

	"github.com/jetsetilly/gopherhal/hardware/bios"
	"github.com/jetsetilly/gopherhal/version"
	lua "github.com/yuin/gopher-lua"
)

func (s *Script) bindVideo() {
	s.newTable("video", map[string]lua.LGFunction{
		"wait":    s.videoWait,
		"frames":  s.videoFrames,
		"step":    s.videoStep,
		"line":    s.videoLine,
		"frame":   s.videoFrame,
		"vblanks": s.videoVBlanks,
	})
}

// video.wait() blocks until the next VBlank interrupt is serviced.
func (s *Script) videoWait(L *lua.LState) int {
	s.con.WaitVBlank()
	return 0
}

// video.frames(n) runs n complete frames without waiting for interrupts.
func (s *Script) videoFrames(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		s.con.RunFrame()
	}
	return 0
}

// video.step() advances the display by one phase and returns a description
// of the events that occurred.
func (s *Script) videoStep(L *lua.LState) int {
	L.Push(lua.LString(s.con.Step().String()))
	return 1
}

func (s *Script) videoLine(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Display.Line()))
	return 1
}

func (s *Script) videoFrame(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.Display.Frame()))
	return 1
}

func (s *Script) videoVBlanks(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.VBlanks()))
	return 1
}

func (s *Script) bindBIOS() {
	tbl := s.newTable("bios", map[string]lua.LGFunction{
		"reset":      s.biosReset,
		"cpuset":     s.biosCPUSet,
		"cpufastset": s.biosCPUFastSet,
		"div":        s.biosDiv,
		"sqrt":       s.biosSqrt,
	})

	consts := map[string]int{
		"RESET_EWRAM":   bios.ResetEWRAM,
		"RESET_IWRAM":   bios.ResetIWRAM,
		"RESET_PALETTE": bios.ResetPalette,
		"RESET_VRAM":    bios.ResetVRAM,
		"RESET_OAM":     bios.ResetOAM,
		"RESET_SIO":     bios.ResetSIO,
		"RESET_SOUND":   bios.ResetSound,
		"RESET_OTHER":   bios.ResetOther,
		"SET_FILL":      bios.SetFill,
		"SET_WORD32":    bios.SetWord32,
	}
	for k, v := range consts {
		tbl.RawSetString(k, lua.LNumber(v))
	}
}

func (s *Script) biosReset(L *lua.LState) int {
	s.con.BIOS.RegisterRAMReset(uint8(checkUint(L, 1, 8)))
	return 0
}

func (s *Script) biosCPUSet(L *lua.LState) int {
	s.con.BIOS.CPUSet(checkAddress(L, 1), checkAddress(L, 2), checkUint(L, 3, 32))
	return 0
}

func (s *Script) biosCPUFastSet(L *lua.LState) int {
	s.con.BIOS.CPUFastSet(checkAddress(L, 1), checkAddress(L, 2), checkUint(L, 3, 32))
	return 0
}

// bios.div(num, den) returns the quotient and the remainder.
func (s *Script) biosDiv(L *lua.LState) int {
	q, r, err := s.con.BIOS.Div(int32(L.CheckInt64(1)), int32(L.CheckInt64(2)))
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LNumber(q))
	L.Push(lua.LNumber(r))
	return 2
}

func (s *Script) biosSqrt(L *lua.LState) int {
	L.Push(lua.LNumber(s.con.BIOS.Sqrt(checkUint(L, 1, 32))))
	return 1
}

func (s *Script) bindHAL() {
	s.newTable("hal", map[string]lua.LGFunction{
		"assert":         s.halAssert,
		"halt":           s.halHalt,
		"version":        s.halVersion,
		"version_string": s.halVersionString,
	})
}

// diagnostic describes the location of the calling Lua function in the same
// form as assert.Diagnostic().
func diagnostic(L *lua.LState, expr string) string {
	where := strings.TrimSuffix(L.Where(1), ":")
	if where == "" {
		where = "unknown"
	}

	fn := "main chunk"
	if dbg, ok := L.GetStack(1); ok {
		if _, err := L.GetInfo("n", dbg, lua.LNil); err == nil && dbg.Name != "" {
			fn = dbg.Name
		}
	}

	return fmt.Sprintf("%s: %s: %s", where, fn, expr)
}

// hal.assert(cond, [expr]) halts the console if cond is false or nil.
func (s *Script) halAssert(L *lua.LState) int {
	if L.ToBool(1) {
		return 0
	}
	s.con.Halt(diagnostic(L, L.OptString(2, "assertion failed")))
	return 0
}

func (s *Script) halHalt(L *lua.LState) int {
	s.con.Halt(diagnostic(L, L.OptString(1, "halt")))
	return 0
}

// hal.version(major, minor, patch) returns true if the application can run on
// this version of the library. Otherwise false and the reason are returned.
func (s *Script) halVersion(L *lua.LState) int {
	err := version.CheckCompatibility(L.CheckInt(1), L.CheckInt(2), L.OptInt(3, 0))
	if err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (s *Script) halVersionString(L *lua.LState) int {
	L.Push(lua.LString(version.Triple()))
	return 1
}
