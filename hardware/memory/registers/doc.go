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

// Package registers implements the IO register file. The register file is a
// little-endian byte array the size of the IO region. Unlike plain memory,
// writes from the CPU side can have side effects and these are implemented as
// write hooks, one per 16bit register.
//
// The CPU side functions (Read8, Write16, etc.) apply the hooks. The Peek and
// Poke functions are for the substrate. They access the underlying value
// directly and never trigger a side effect. The display timing uses Poke16()
// to update VCOUNT and the status flags of DISPSTAT for example, both of which
// are read-only to the CPU.
//
// Registers that are not given a hook behave like plain memory.
package registers
