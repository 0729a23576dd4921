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

package memory

import (
	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
)

// Sentinel error patterns.
const (
	ImageTooLarge = "memory: %s image too large (%d bytes)"
)

// Memory is the entire address space of the console.
type Memory struct {
	BIOS    []uint8
	EWRAM   []uint8
	IWRAM   []uint8
	IO      *registers.Registers
	Palette []uint8
	VRAM    []uint8
	OAM     []uint8
	ROM     []uint8
	SRAM    []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(io *registers.Registers) *Memory {
	mem := &Memory{
		BIOS:    make([]uint8, addresses.BIOSSize),
		EWRAM:   make([]uint8, addresses.EWRAMSize),
		IWRAM:   make([]uint8, addresses.IWRAMSize),
		IO:      io,
		Palette: make([]uint8, addresses.PaletteSize),
		VRAM:    make([]uint8, addresses.VRAMSize),
		OAM:     make([]uint8, addresses.OAMSize),
		SRAM:    make([]uint8, addresses.SRAMSize),
	}
	mem.Reset()
	return mem
}

// Reset clears all of RAM. Erased SRAM reads as 0xff. The contents of BIOS
// and ROM are unaffected.
func (mem *Memory) Reset() {
	clear(mem.EWRAM)
	clear(mem.IWRAM)
	clear(mem.Palette)
	clear(mem.VRAM)
	clear(mem.OAM)
	for i := range mem.SRAM {
		mem.SRAM[i] = 0xff
	}
}

// LoadROM attaches a cartridge ROM image. The data is not copied.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) > addresses.ROMSize {
		return curated.Errorf(ImageTooLarge, "ROM", len(data))
	}
	mem.ROM = data
	return nil
}

// LoadBIOS copies a BIOS image into the BIOS area.
func (mem *Memory) LoadBIOS(data []uint8) error {
	if len(data) > addresses.BIOSSize {
		return curated.Errorf(ImageTooLarge, "BIOS", len(data))
	}
	clear(mem.BIOS)
	copy(mem.BIOS, data)
	return nil
}

// area returns the backing slice for the area. IO has no backing slice.
func (mem *Memory) area(area memorymap.Area) []uint8 {
	switch area {
	case memorymap.BIOS:
		return mem.BIOS
	case memorymap.EWRAM:
		return mem.EWRAM
	case memorymap.IWRAM:
		return mem.IWRAM
	case memorymap.Palette:
		return mem.Palette
	case memorymap.VRAM:
		return mem.VRAM
	case memorymap.OAM:
		return mem.OAM
	case memorymap.ROM:
		return mem.ROM
	case memorymap.SRAM:
		return mem.SRAM
	}
	return nil
}

// Read8 implements the bus.CPUBus interface.
func (mem *Memory) Read8(address uint32) uint8 {
	return mem.Peek8(address)
}

// Read16 implements the bus.CPUBus interface.
func (mem *Memory) Read16(address uint32) uint16 {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		return mem.IO.Read16(offset)
	case memorymap.SRAM:
		v := uint16(mem.SRAM[offset])
		return v | v<<8
	}
	address &^= 0x01
	return uint16(mem.Read8(address)) | uint16(mem.Read8(address+1))<<8
}

// Read32 implements the bus.CPUBus interface.
func (mem *Memory) Read32(address uint32) uint32 {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		return mem.IO.Read32(offset)
	case memorymap.SRAM:
		v := uint32(mem.SRAM[offset])
		return v | v<<8 | v<<16 | v<<24
	}
	address &^= 0x03
	return uint32(mem.Read16(address)) | uint32(mem.Read16(address+2))<<16
}

// Write8 implements the bus.CPUBus interface.
func (mem *Memory) Write8(address uint32, data uint8) {
	area, offset := memorymap.MapAddress(address)
	if area.ReadOnly() {
		return
	}
	if area == memorymap.IO {
		mem.IO.Write8(offset, data)
		return
	}
	mem.area(area)[offset] = data
}

// Write16 implements the bus.CPUBus interface.
func (mem *Memory) Write16(address uint32, data uint16) {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		mem.IO.Write16(offset, data)
		return
	case memorymap.SRAM:
		mem.SRAM[offset] = uint8(data >> ((address & 0x01) * 8))
		return
	}
	address &^= 0x01
	mem.Write8(address, uint8(data))
	mem.Write8(address+1, uint8(data>>8))
}

// Write32 implements the bus.CPUBus interface.
func (mem *Memory) Write32(address uint32, data uint32) {
	area, offset := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		mem.IO.Write32(offset, data)
		return
	case memorymap.SRAM:
		mem.SRAM[offset] = uint8(data >> ((address & 0x03) * 8))
		return
	}
	address &^= 0x03
	mem.Write16(address, uint16(data))
	mem.Write16(address+2, uint16(data>>16))
}

// Peek8 implements the bus.DebuggerBus interface.
func (mem *Memory) Peek8(address uint32) uint8 {
	area, offset := memorymap.MapAddress(address)
	if area == memorymap.IO {
		return mem.IO.Read8(offset)
	}
	a := mem.area(area)
	if int(offset) >= len(a) {
		return 0
	}
	return a[offset]
}

// Poke8 implements the bus.DebuggerBus interface.
func (mem *Memory) Poke8(address uint32, data uint8) {
	area, offset := memorymap.MapAddress(address)
	if area == memorymap.IO {
		v := mem.IO.Peek16(offset)
		if offset&0x01 == 0x01 {
			v = (v & 0x00ff) | uint16(data)<<8
		} else {
			v = (v & 0xff00) | uint16(data)
		}
		mem.IO.Poke16(offset, v)
		return
	}
	a := mem.area(area)
	if int(offset) >= len(a) {
		return
	}
	a[offset] = data
}
