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
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware"
	"github.com/jetsetilly/gopherhal/logger"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua state bound to a console.
type Script struct {
	con    *hardware.Console
	L      *lua.LState
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is written to output. A nil output
// discards printed text.
func NewScript(con *hardware.Console, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	s := &Script{
		con:    con,
		L:      lua.NewState(),
		output: output,
	}

	s.L.SetGlobal("print", s.L.NewFunction(s.print))

	s.bindIRQ()
	s.bindKeypad()
	s.bindDMA()
	s.bindMemory()
	s.bindVideo()
	s.bindBIOS()
	s.bindHAL()

	return s
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.L.Close()
}

// RunFile loads and runs the Lua file.
func (s *Script) RunFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}
	defer f.Close()
	return s.run(f, filename)
}

// RunString runs the Lua source. The name is used in error messages and
// diagnostics.
func (s *Script) RunString(name string, source string) error {
	return s.run(strings.NewReader(source), name)
}

func (s *Script) run(r io.Reader, name string) error {
	fn, err := s.L.Load(r, name)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	logger.Logf(logger.Allow, "script", "running %s", name)

	s.L.Push(fn)
	err = s.L.PCall(0, lua.MultRet, nil)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// the replacement for the Lua print() function.
func (s *Script) print(L *lua.LState) int {
	top := L.GetTop()
	for i := 1; i <= top; i++ {
		if i > 1 {
			io.WriteString(s.output, "\t")
		}
		io.WriteString(s.output, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(s.output, "\n")
	return 0
}

// newTable creates a table of functions and sets it as a global.
func (s *Script) newTable(name string, funcs map[string]lua.LGFunction) *lua.LTable {
	tbl := s.L.NewTable()
	s.L.SetFuncs(tbl, funcs)
	s.L.SetGlobal(name, tbl)
	return tbl
}

// raise a Lua error for the Go error.
func raise(L *lua.LState, err error) {
	L.RaiseError("%v", err)
}

// checkAddress returns the argument as a 32bit address.
func checkAddress(L *lua.LState, n int) uint32 {
	v := L.CheckInt64(n)
	if v < 0 || v > 0xffffffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%d)", v))
	}
	return uint32(v)
}

// checkUint returns the argument as an unsigned value of no more than bits
// bits.
func checkUint(L *lua.LState, n int, bits int) uint32 {
	v := L.CheckInt64(n)
	if v < 0 || v >= 1<<bits {
		L.ArgError(n, fmt.Sprintf("value out of range for %d bits (%d)", bits, v))
	}
	return uint32(v)
}
