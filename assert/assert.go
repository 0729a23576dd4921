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

package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Halter is implemented by hardware.Console.
type Halter interface {
	Halt(diagnostic string)
}

// Assert halts the console if cond is false. The expr argument is the text of
// the condition.
func Assert(con Halter, cond bool, expr string) {
	if cond {
		return
	}
	con.Halt(Diagnostic(1, expr))
}

// Diagnostic formats the diagnostic for the caller of the function skip
// frames above Diagnostic() itself. The diagnostic has the form:
//
//	file:line: function: expression
func Diagnostic(skip int, expr string) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return fmt.Sprintf("unknown: unknown: %s", expr)
	}

	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if i := strings.LastIndexByte(fn, '/'); i >= 0 {
			fn = fn[i+1:]
		}
	}

	return fmt.Sprintf("%s:%d: %s: %s", filepath.Base(file), line, fn, expr)
}
