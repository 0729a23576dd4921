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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
	"github.com/jetsetilly/gopherhal/test"
)

func TestLittleEndian(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())

	mem.Write32(addresses.EWRAMStart, 0x44332211)
	test.ExpectEquality(t, mem.Read8(addresses.EWRAMStart), 0x11)
	test.ExpectEquality(t, mem.Read8(addresses.EWRAMStart+3), 0x44)
	test.ExpectEquality(t, mem.Read16(addresses.EWRAMStart+2), 0x4433)

	// misaligned accesses are forced to alignment
	test.ExpectEquality(t, mem.Read32(addresses.EWRAMStart+2), 0x44332211)
	mem.Write16(addresses.IWRAMStart+1, 0xbeef)
	test.ExpectEquality(t, mem.Read16(addresses.IWRAMStart), 0xbeef)
}

func TestMirror(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())
	mem.Write8(addresses.IWRAMStart+0x10, 0x55)
	test.ExpectEquality(t, mem.Read8(addresses.IWRAMStart+addresses.IWRAMSize+0x10), 0x55)
}

func TestReadOnly(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())
	rom := []uint8{0x01, 0x02, 0x03, 0x04}
	test.ExpectSuccess(t, mem.LoadROM(rom))

	mem.Write8(addresses.ROMStart, 0xff)
	test.ExpectEquality(t, mem.Read32(addresses.ROMStart), 0x04030201)

	// second wait-state mirror
	test.ExpectEquality(t, mem.Read8(0x0a000001), 0x02)

	// past the end of the image
	test.ExpectEquality(t, mem.Read8(addresses.ROMStart+4), 0x00)

	// poke can change a read-only area
	mem.Poke8(addresses.ROMStart, 0xff)
	test.ExpectEquality(t, mem.Read8(addresses.ROMStart), 0xff)
}

func TestImageTooLarge(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())
	err := mem.LoadBIOS(make([]uint8, addresses.BIOSSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())
	mem.Write32(0x01000000, 0xffffffff)
	test.ExpectEquality(t, mem.Read32(0x01000000), 0x00)
	test.ExpectEquality(t, mem.Read8(0xf0000000), 0x00)
}

func TestSRAM(t *testing.T) {
	mem := memory.NewMemory(registers.NewRegisters())

	// erased
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart), 0xff)

	mem.Write8(addresses.SRAMStart, 0x5a)
	test.ExpectEquality(t, mem.Read16(addresses.SRAMStart), 0x5a5a)
	test.ExpectEquality(t, mem.Read32(addresses.SRAMStart), 0x5a5a5a5a)

	// only the addressed lane is stored
	mem.Write32(addresses.SRAMStart+0x11, 0x44332211)
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart+0x10), 0xff)
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart+0x11), 0x22)
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart+0x12), 0xff)

	mem.Write16(addresses.SRAMStart+0x20, 0x2211)
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart+0x20), 0x11)
	test.ExpectEquality(t, mem.Read8(addresses.SRAMStart+0x21), 0xff)
}

func TestIO(t *testing.T) {
	io := registers.NewRegisters()
	mem := memory.NewMemory(io)

	io.Poke16(addresses.IF, 0x0003)
	mem.Write16(addresses.IOStart+addresses.IF, 0x0001)
	test.ExpectEquality(t, io.Peek16(addresses.IF), 0x0002)

	mem.Write32(addresses.IOStart+addresses.IE, 0x0000_1001)
	test.ExpectEquality(t, io.Peek16(addresses.IE), 0x1001)
	test.ExpectEquality(t, mem.Read16(addresses.IOStart+addresses.IE), 0x1001)

	// poke bypasses the read-only property of VCOUNT
	mem.Poke8(addresses.IOStart+addresses.VCOUNT, 0x40)
	test.ExpectEquality(t, io.Peek16(addresses.VCOUNT), 0x40)
	test.ExpectEquality(t, mem.Peek8(addresses.IOStart+addresses.VCOUNT), 0x40)
}
