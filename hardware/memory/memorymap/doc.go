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

// Package memorymap facilitates the translation of addresses to the primary
// address equivalent and the area of memory the address belongs to.
//
// Most areas of memory are mirrored across the 16MB block of the address
// space that they occupy. VRAM is an exception: the 96KB of VRAM is mirrored
// every 128KB with the upper 32KB of each mirror repeating the last 32KB of
// VRAM. The three cartridge ROM wait-state areas each map the same 32MB of
// ROM.
package memorymap
