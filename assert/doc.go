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

// Package assert implements the fatal assertion of the HAL. A failed
// assertion halts the console with a diagnostic that names the source
// location, the enclosing function and the text of the failed expression.
//
// For example:
//
//	assert.Assert(con, lives >= 0, "lives >= 0")
//
// There is no recovery from a failed assertion. See hardware.Console.Halt()
// for a description of the halted state.
package assert
