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

package bios_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/bios"
	"github.com/jetsetilly/gopherhal/hardware/memory"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
	"github.com/jetsetilly/gopherhal/test"
)

func setup() (*bios.Emulated, *memory.Memory, *registers.Registers) {
	io := registers.NewRegisters()
	mem := memory.NewMemory(io)
	return bios.NewEmulated(mem, io), mem, io
}

func TestDiv(t *testing.T) {
	em, _, _ := setup()

	q, r, err := em.Div(-7, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, -3)
	test.ExpectEquality(t, r, -1)

	q, r, err = em.Div(math.MinInt32, -1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, math.MinInt32)
	test.ExpectEquality(t, r, 0)

	_, _, err = em.Div(10, 0)
	test.ExpectSuccess(t, curated.Is(err, bios.DivideByZero))
}

func TestSqrt(t *testing.T) {
	em, _, _ := setup()
	for _, v := range []uint32{0, 1, 2, 3, 4, 15, 16, 17, 1 << 20, math.MaxUint32} {
		r := uint64(em.Sqrt(v))
		test.ExpectSuccess(t, r*r <= uint64(v), v)
		test.ExpectSuccess(t, (r+1)*(r+1) > uint64(v), v)
	}
}

func TestCPUSet(t *testing.T) {
	em, mem, _ := setup()

	for i := range 16 {
		mem.Write8(addresses.EWRAMStart+uint32(i), uint8(i+1))
	}

	em.CPUSet(addresses.EWRAMStart, addresses.IWRAMStart, 8)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart+12), 0x100f0e0d)

	em.CPUSet(addresses.EWRAMStart, addresses.IWRAMStart+0x100, 4|bios.SetFill|bios.SetWord32)
	for i := range 4 {
		test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart+0x100+uint32(i*4)), 0x04030201, i)
	}
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart+0x110), 0x00000000)

	// fast set rounds up to eight words
	em.CPUFastSet(addresses.EWRAMStart, addresses.IWRAMStart+0x200, 1|bios.SetFill)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart+0x200+28), 0x04030201)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart+0x200+32), 0x00000000)
}

func TestRegisterRAMReset(t *testing.T) {
	em, mem, io := setup()

	mem.Write32(addresses.EWRAMStart+0x100, 0xffffffff)
	mem.Write32(addresses.IWRAMEnd-3, 0xffffffff)
	mem.Write32(addresses.IWRAMStart, 0xffffffff)
	io.Poke16(addresses.SOUNDCNT_X, 0x0080)
	io.Poke16(addresses.BLDCNT, 0x00ff)
	io.Poke16(addresses.KEYINPUT, 0x03fe)

	em.RegisterRAMReset(bios.ResetEWRAM | bios.ResetSound)
	test.ExpectEquality(t, mem.Read32(addresses.EWRAMStart+0x100), 0)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart), 0xffffffff)
	test.ExpectEquality(t, io.Peek16(addresses.SOUNDCNT_X), 0)
	test.ExpectEquality(t, io.Peek16(addresses.BLDCNT), 0x00ff)

	em.RegisterRAMReset(bios.ResetIWRAM | bios.ResetOther)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMStart), 0)
	test.ExpectEquality(t, mem.Read32(addresses.IWRAMEnd-3), 0xffffffff)
	test.ExpectEquality(t, io.Peek16(addresses.BLDCNT), 0)
	test.ExpectEquality(t, io.Peek16(addresses.KEYINPUT), 0x03fe)
}
