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

package memorymap

import (
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
	ROM
	SRAM
)

// ReadOnly returns true if the CPU cannot write to the area.
func (a Area) ReadOnly() bool {
	return a == BIOS || a == ROM || a == Undefined
}

// MapAddress translates the address to the area it belongs to and the offset
// into that area. The offset for an Undefined area is zero.
func MapAddress(address uint32) (Area, uint32) {
	switch address >> 24 {
	case 0x00:
		if address <= addresses.BIOSEnd {
			return BIOS, address
		}
	case 0x02:
		return EWRAM, address % addresses.EWRAMSize
	case 0x03:
		return IWRAM, address % addresses.IWRAMSize
	case 0x04:
		if address <= addresses.IOEnd {
			return IO, address - addresses.IOStart
		}
	case 0x05:
		return Palette, address % addresses.PaletteSize
	case 0x06:
		offset := address % 0x20000
		if offset >= addresses.VRAMSize {
			offset -= 0x8000
		}
		return VRAM, offset
	case 0x07:
		return OAM, address % addresses.OAMSize
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		return ROM, address % addresses.ROMSize
	case 0x0e, 0x0f:
		return SRAM, address % addresses.SRAMSize
	}

	return Undefined, 0
}
