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

// Package addresses contains the fixed memory map of the console, the
// offsets of the IO registers and the bit layouts of those registers that
// the HAL interprets. Application binaries assume these exact offsets and bit
// positions so none of these values can change.
//
// IO register offsets are relative to IOStart and are used to index the
// register file directly. The Symbols map provides the canonical name of each
// register for debugging output.
package addresses
