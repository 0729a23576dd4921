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

package bios

import (
	"math"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/bus"
)

// Sentinel error patterns.
const (
	DivideByZero = "bios: divide by zero (%d / 0)"
)

// Flags for RegisterRAMReset().
const (
	ResetEWRAM   = 0x01
	ResetIWRAM   = 0x02
	ResetPalette = 0x04
	ResetVRAM    = 0x08
	ResetOAM     = 0x10
	ResetSIO     = 0x20
	ResetSound   = 0x40
	ResetOther   = 0x80
)

// Bits of the CPUSet() control word. The low 21 bits are the number of units.
const (
	SetCountMask = 0x001fffff
	SetFill      = 0x01000000
	SetWord32    = 0x04000000
)

// Services are the privileged routines.
type Services interface {
	// RegisterRAMReset clears the areas of memory and groups of registers
	// selected by the flags
	RegisterRAMReset(flags uint8)

	// CPUSet copies or fills memory in 16 or 32bit units
	CPUSet(src uint32, dst uint32, control uint32)

	// CPUFastSet copies or fills memory in 32bit units. The count is rounded
	// up to a multiple of eight words
	CPUFastSet(src uint32, dst uint32, control uint32)

	// Div returns the quotient and remainder of the signed division. The
	// quotient is rounded towards zero
	Div(num int32, den int32) (int32, int32, error)

	// Sqrt returns the integer square root
	Sqrt(v uint32) uint16
}

// Registers is the part of the register file used by the services.
type Registers interface {
	Poke16(offset uint32, data uint16)
}

// Emulated is a software implementation of the Services interface.
type Emulated struct {
	mem bus.CPUBus
	io  Registers
}

// NewEmulated is the preferred method of initialisation for the Emulated
// type.
func NewEmulated(mem bus.CPUBus, io Registers) *Emulated {
	return &Emulated{
		mem: mem,
		io:  io,
	}
}

// the top of IWRAM is used by the BIOS and is not cleared.
const iwramReserved = 0x200

// register groups cleared by RegisterRAMReset().
var (
	sioRegisters   = [][2]uint32{{0x120, 0x12c}, {0x134, 0x15a}}
	soundRegisters = [][2]uint32{{0x060, 0x0a8}}
	otherRegisters = [][2]uint32{{0x000, 0x060}, {0x0b0, 0x120}, {0x200, 0x20a}}
)

func (em *Emulated) clearMemory(start uint32, size uint32) {
	for a := start; a < start+size; a += 4 {
		em.mem.Write32(a, 0)
	}
}

func (em *Emulated) clearRegisters(groups [][2]uint32) {
	for _, g := range groups {
		for o := g[0]; o < g[1]; o += 2 {
			em.io.Poke16(o, 0)
		}
	}
}

// RegisterRAMReset implements the Services interface.
func (em *Emulated) RegisterRAMReset(flags uint8) {
	if flags&ResetEWRAM == ResetEWRAM {
		em.clearMemory(addresses.EWRAMStart, addresses.EWRAMSize)
	}
	if flags&ResetIWRAM == ResetIWRAM {
		em.clearMemory(addresses.IWRAMStart, addresses.IWRAMSize-iwramReserved)
	}
	if flags&ResetPalette == ResetPalette {
		em.clearMemory(addresses.PaletteStart, addresses.PaletteSize)
	}
	if flags&ResetVRAM == ResetVRAM {
		em.clearMemory(addresses.VRAMStart, addresses.VRAMSize)
	}
	if flags&ResetOAM == ResetOAM {
		em.clearMemory(addresses.OAMStart, addresses.OAMSize)
	}
	if flags&ResetSIO == ResetSIO {
		em.clearRegisters(sioRegisters)
	}
	if flags&ResetSound == ResetSound {
		em.clearRegisters(soundRegisters)
	}
	if flags&ResetOther == ResetOther {
		em.clearRegisters(otherRegisters)
	}
}

// CPUSet implements the Services interface.
func (em *Emulated) CPUSet(src uint32, dst uint32, control uint32) {
	count := control & SetCountMask
	fill := control&SetFill == SetFill

	if control&SetWord32 == SetWord32 {
		src &^= 0x03
		dst &^= 0x03
		for range count {
			em.mem.Write32(dst, em.mem.Read32(src))
			dst += 4
			if !fill {
				src += 4
			}
		}
		return
	}

	src &^= 0x01
	dst &^= 0x01
	for range count {
		em.mem.Write16(dst, em.mem.Read16(src))
		dst += 2
		if !fill {
			src += 2
		}
	}
}

// CPUFastSet implements the Services interface.
func (em *Emulated) CPUFastSet(src uint32, dst uint32, control uint32) {
	count := (control&SetCountMask + 7) &^ 7
	control = (control &^ SetCountMask) | count | SetWord32
	em.CPUSet(src, dst, control)
}

// Div implements the Services interface.
func (em *Emulated) Div(num int32, den int32) (int32, int32, error) {
	if den == 0 {
		return 0, 0, curated.Errorf(DivideByZero, num)
	}

	// the one overflowing case wraps as the hardware divider does
	if num == math.MinInt32 && den == -1 {
		return math.MinInt32, 0, nil
	}

	return num / den, num % den, nil
}

// Sqrt implements the Services interface.
func (em *Emulated) Sqrt(v uint32) uint16 {
	var r uint32
	bit := uint32(1) << 30
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= r+bit {
			v -= r + bit
			r = r>>1 + bit
		} else {
			r >>= 1
		}
		bit >>= 2
	}
	return uint16(r)
}
