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

// Package memory implements the address space of the console. Access to
// memory is through one of the buses defined in the bus package:
//
//	                        DMA channels
//
//	                             |
//	                             |
//	                             \/
//
//	    CPU ---- cpu bus ---- MEMORY ---- registers ---- hooks
//
//	                             |
//	                             |
//
//	                        debugger bus
//
//	                             |
//	                             |
//
//	                          SUBSTRATE
//
// Addresses are mapped to an area of memory by the memorymap package. Wider
// accesses are composed little-endian from byte accesses except for two
// cases. IO access is passed to the registers package 16bits at a time so that
// write hooks see one write rather than two. SRAM is on an 8bit bus: a 16 or
// 32bit read returns the addressed byte replicated in every lane and a 16 or
// 32bit write stores only the lane selected by the low bits of the address.
//
// BIOS and ROM are read-only to the CPU bus. Reading an unmapped address
// returns zero and writing to one is ignored.
package memory
