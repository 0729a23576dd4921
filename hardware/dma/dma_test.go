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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/dma"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/memory"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
	"github.com/jetsetilly/gopherhal/test"
)

type requester struct {
	requests []irq.Source
}

func (r *requester) Request(src irq.Source) {
	r.requests = append(r.requests, src)
}

type fifo struct {
	data [2][]uint8
}

func (f *fifo) FIFOWrite(n int, data uint8) {
	f.data[n] = append(f.data[n], data)
}

func setup(t *testing.T) (*dma.DMA, *memory.Memory, *requester) {
	t.Helper()
	io := registers.NewRegisters()
	mem := memory.NewMemory(io)
	req := &requester{}

	rom := make([]uint8, 0x100)
	for i := range rom {
		rom[i] = uint8(i)
	}
	test.DemandSuccess(t, mem.LoadROM(rom))

	return dma.NewDMA(io, mem, req), mem, req
}

const (
	src = addresses.EWRAMStart
	dst = addresses.IWRAMStart
)

func TestCapability(t *testing.T) {
	d, mem, _ := setup(t)

	for i := range 0x40 {
		mem.Write8(dst+uint32(i), 0xee)
	}

	for ch := range 3 {
		err := d.Copy(ch, addresses.ROMStart, dst, 0x40, dma.Unit32)
		test.ExpectSuccess(t, curated.Is(err, dma.CapabilityViolation), ch)
		err = d.Copy(ch, addresses.ROMStart, dst, 0x40, dma.Unit16)
		test.ExpectSuccess(t, curated.Is(err, dma.CapabilityViolation), ch)
		err = d.Fill(ch, addresses.ROMStart+0x10, dst, 0x40, dma.Unit32)
		test.ExpectSuccess(t, curated.Is(err, dma.CapabilityViolation), ch)

		// the ROM mirrors are rejected too
		err = d.Copy(ch, 0x0c000000, dst, 0x40, dma.Unit32)
		test.ExpectSuccess(t, curated.Is(err, dma.CapabilityViolation), ch)
	}

	for i := range 0x40 {
		test.ExpectEquality(t, mem.Read8(dst+uint32(i)), 0xee, i)
	}

	// channel 3 can read from ROM
	test.ExpectSuccess(t, d.Copy(3, addresses.ROMStart, dst, 0x40, dma.Unit32))
	for i := range 0x40 {
		test.ExpectEquality(t, mem.Read8(dst+uint32(i)), uint8(i), i)
	}
}

func TestCapabilityRegisterPath(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write32(dst, 0x12345678)

	// arming through the register file is refused in the same way
	mem.Write32(addresses.IOStart+addresses.DMASAD(1), addresses.ROMStart)
	mem.Write32(addresses.IOStart+addresses.DMADAD(1), dst)
	mem.Write16(addresses.IOStart+addresses.DMACNTL(1), 1)
	mem.Write16(addresses.IOStart+addresses.DMACNTH(1), uint16(dma.Enable|dma.Word32))

	test.ExpectEquality(t, mem.Read32(dst), 0x12345678)
	test.ExpectFailure(t, d.Armed(1))
	test.ExpectEquality(t, mem.Read16(addresses.IOStart+addresses.DMACNTH(1))&uint16(dma.Enable), 0)
}

func TestInvalidArguments(t *testing.T) {
	d, _, _ := setup(t)

	for _, ch := range []int{-1, 4, 10} {
		test.ExpectSuccess(t, curated.Is(d.Copy(ch, src, dst, 4, dma.Unit32), dma.InvalidChannel))
		test.ExpectSuccess(t, curated.Is(d.Fill(ch, src, dst, 4, dma.Unit32), dma.InvalidChannel))
		test.ExpectSuccess(t, curated.Is(d.Transfer(ch, src, dst, 1, 0), dma.InvalidChannel))
		test.ExpectSuccess(t, curated.Is(d.Stop(ch), dma.InvalidChannel))
		test.ExpectFailure(t, d.Armed(ch))
	}

	test.ExpectSuccess(t, curated.Is(d.Copy(0, src+2, dst, 4, dma.Unit32), dma.Misaligned))
	test.ExpectSuccess(t, curated.Is(d.Copy(0, src, dst+1, 4, dma.Unit16), dma.Misaligned))
	test.ExpectSuccess(t, curated.Is(d.Copy(0, src, dst, 6, dma.Unit32), dma.InvalidLength))
	test.ExpectSuccess(t, curated.Is(d.Copy(0, src, dst, 4, 3), dma.InvalidUnit))
	test.ExpectSuccess(t, curated.Is(d.Copy(0, src, dst, 0x8002, dma.Unit16), dma.TooLong))

	// zero length is not an error
	test.ExpectSuccess(t, d.Copy(0, src, dst, 0, dma.Unit16))
}

func TestCopyAndFill(t *testing.T) {
	d, mem, req := setup(t)

	for i := range 0x20 {
		mem.Write8(src+uint32(i), uint8(0x80+i))
	}
	test.ExpectSuccess(t, d.Copy(0, src, dst, 0x20, dma.Unit16))
	for i := range 0x20 {
		test.ExpectEquality(t, mem.Read8(dst+uint32(i)), uint8(0x80+i), i)
	}

	mem.Write32(src+0x100, 0xcafef00d)
	test.ExpectSuccess(t, d.Fill(2, src+0x100, dst, 0x20, dma.Unit32))
	for i := range 8 {
		test.ExpectEquality(t, mem.Read32(dst+uint32(i*4)), 0xcafef00d, i)
	}
	test.ExpectEquality(t, mem.Read32(dst+0x20), 0x00000000)

	// no interrupt was asked for
	test.ExpectEquality(t, len(req.requests), 0)
	test.ExpectFailure(t, d.Armed(0))
}

func TestMaximumCount(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write16(src, 0x1234)

	control := dma.SourceControl(dma.Fixed) | dma.DestControl(dma.Increment)
	test.ExpectSuccess(t, d.Transfer(0, src, addresses.EWRAMStart+0x10000, 0, control))
	test.ExpectEquality(t, mem.Read16(addresses.EWRAMStart+0x10000), 0x1234)
	test.ExpectEquality(t, mem.Read16(addresses.EWRAMStart+0x10000+0x7ffe), 0x1234)
	test.ExpectEquality(t, mem.Read16(addresses.EWRAMStart+0x10000+0x8000), 0x0000)
}

func TestDecrement(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write16(src, 0x1111)
	mem.Write16(src+2, 0x2222)

	control := dma.SourceControl(dma.Increment) | dma.DestControl(dma.Decrement)
	test.ExpectSuccess(t, d.Transfer(3, src, dst+2, 2, control))
	test.ExpectEquality(t, mem.Read16(dst+2), 0x1111)
	test.ExpectEquality(t, mem.Read16(dst), 0x2222)
}

func TestTruncation(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write32(src, 0xaabbccdd)

	// misaligned addresses are silently truncated by Transfer()
	control := dma.Word32
	test.ExpectSuccess(t, d.Transfer(3, src+3, dst+1, 1, control))
	test.ExpectEquality(t, mem.Read32(dst), 0xaabbccdd)
}

func TestRegisterPath(t *testing.T) {
	d, mem, req := setup(t)
	mem.Write32(src, 0x01020304)

	mem.Write32(addresses.IOStart+addresses.DMASAD(3), src)
	mem.Write32(addresses.IOStart+addresses.DMADAD(3), dst)
	mem.Write16(addresses.IOStart+addresses.DMACNTL(3), 1)
	mem.Write16(addresses.IOStart+addresses.DMACNTH(3), uint16(dma.Enable|dma.Word32|dma.IRQOnEnd))

	test.ExpectEquality(t, mem.Read32(dst), 0x01020304)
	test.ExpectFailure(t, d.Armed(3))
	test.ExpectEquality(t, mem.Read16(addresses.IOStart+addresses.DMACNTH(3)), uint16(dma.Word32|dma.IRQOnEnd))
	test.DemandEquality(t, len(req.requests), 1)
	test.ExpectEquality(t, req.requests[0], irq.DMA3)
}

func TestVBlank(t *testing.T) {
	d, mem, req := setup(t)
	mem.Write16(src, 0xbeef)

	control := dma.StartTiming(dma.AtVBlank) | dma.IRQOnEnd
	test.ExpectSuccess(t, d.Transfer(1, src, dst, 1, control))
	test.ExpectSuccess(t, d.Armed(1))
	test.ExpectEquality(t, mem.Read16(dst), 0x0000)

	d.HBlank(10)
	test.ExpectEquality(t, mem.Read16(dst), 0x0000)

	d.VBlank()
	test.ExpectEquality(t, mem.Read16(dst), 0xbeef)
	test.ExpectFailure(t, d.Armed(1))
	test.ExpectEquality(t, mem.Read16(addresses.IOStart+addresses.DMACNTH(1))&uint16(dma.Enable), 0)
	test.DemandEquality(t, len(req.requests), 1)
	test.ExpectEquality(t, req.requests[0], irq.DMA1)

	// not repeating so nothing more happens
	mem.Write16(dst, 0x0000)
	d.VBlank()
	test.ExpectEquality(t, mem.Read16(dst), 0x0000)
}

func TestHBlankSkipsVBlank(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write16(src, 0xabcd)

	control := dma.StartTiming(dma.AtHBlank) | dma.Repeat | dma.SourceControl(dma.Fixed)
	test.ExpectSuccess(t, d.Transfer(0, src, dst, 1, control))

	for line := range 228 {
		d.HBlank(line)
	}

	for i := range 160 {
		test.ExpectEquality(t, mem.Read16(dst+uint32(i*2)), 0xabcd, i)
	}
	test.ExpectEquality(t, mem.Read16(dst+160*2), 0x0000)
	test.ExpectSuccess(t, d.Armed(0))

	test.ExpectSuccess(t, d.Stop(0))
	test.ExpectFailure(t, d.Armed(0))
	d.HBlank(0)
	test.ExpectEquality(t, mem.Read16(dst+160*2), 0x0000)
}

func TestRepeatReload(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write32(src, 0x11111111)
	mem.Write32(src+4, 0x22222222)

	control := dma.StartTiming(dma.AtVBlank) | dma.Repeat | dma.Word32 | dma.DestControl(dma.Reload)
	test.ExpectSuccess(t, d.Transfer(2, src, dst, 1, control))

	d.VBlank()
	d.VBlank()
	test.ExpectEquality(t, mem.Read32(dst), 0x22222222)
	test.ExpectEquality(t, mem.Read32(dst+4), 0x00000000)
	test.ExpectSuccess(t, d.Armed(2))
}

func TestRearm(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write16(src, 0x0001)
	mem.Write16(src+2, 0x0002)

	test.ExpectSuccess(t, d.Transfer(1, src, dst, 1, dma.StartTiming(dma.AtVBlank)))
	test.ExpectSuccess(t, d.Transfer(1, src+2, dst, 1, dma.StartTiming(dma.AtVBlank)))
	d.VBlank()
	test.ExpectEquality(t, mem.Read16(dst), 0x0002)
}

func TestSpecialChannel0(t *testing.T) {
	d, mem, _ := setup(t)
	mem.Write16(src, 0xffff)

	test.ExpectSuccess(t, d.Transfer(0, src, dst, 1, dma.StartTiming(dma.AtSpecial)))
	for line := range 228 {
		d.HBlank(line)
	}
	d.VBlank()
	d.SoundFIFO(0)
	test.ExpectEquality(t, mem.Read16(dst), 0x0000)
}

func TestVideoCapture(t *testing.T) {
	d, mem, _ := setup(t)

	control := dma.StartTiming(dma.AtSpecial) | dma.Repeat | dma.SourceControl(dma.Fixed)
	test.ExpectSuccess(t, d.Transfer(3, addresses.IOStart+addresses.VCOUNT, dst, 1, control))

	for line := range 228 {
		mem.Poke8(addresses.IOStart+addresses.VCOUNT, uint8(line))
		d.HBlank(line)
	}

	for i := range 160 {
		test.ExpectEquality(t, mem.Read16(dst+uint32(i*2)), uint16(i+2), i)
	}
	test.ExpectEquality(t, mem.Read16(dst+160*2), 0x0000)
	test.ExpectFailure(t, d.Armed(3))
}

func TestSoundFIFO(t *testing.T) {
	io := registers.NewRegisters()
	mem := memory.NewMemory(io)
	d := dma.NewDMA(io, mem, nil)
	f := &fifo{}
	io.SetFIFOSink(f)

	for i := range 32 {
		mem.Write8(src+uint32(i), uint8(i))
	}

	control := dma.StartTiming(dma.AtSpecial) | dma.Repeat | dma.Word32 | dma.DestControl(dma.Fixed)
	test.ExpectSuccess(t, d.Transfer(1, src, addresses.IOStart+addresses.FIFO_A, 4, control))
	test.ExpectSuccess(t, d.Transfer(2, src+16, addresses.IOStart+addresses.FIFO_B, 4, control))

	d.SoundFIFO(0)
	test.DemandEquality(t, len(f.data[0]), 16)
	test.ExpectEquality(t, len(f.data[1]), 0)
	for i := range 16 {
		test.ExpectEquality(t, f.data[0][i], uint8(i), i)
	}

	d.SoundFIFO(1)
	d.SoundFIFO(0)
	test.DemandEquality(t, len(f.data[1]), 16)
	test.ExpectEquality(t, f.data[1][0], 16)
	test.DemandEquality(t, len(f.data[0]), 32)
	test.ExpectEquality(t, f.data[0][16], 16)

	// other edges do not drive the FIFO channels
	d.VBlank()
	d.HBlank(0)
	test.ExpectEquality(t, len(f.data[0]), 32)
}

func TestReset(t *testing.T) {
	d, mem, _ := setup(t)
	test.ExpectSuccess(t, d.Transfer(1, src, dst, 1, dma.StartTiming(dma.AtVBlank)))
	d.Reset()
	test.ExpectFailure(t, d.Armed(1))
	test.ExpectEquality(t, mem.Read32(addresses.IOStart+addresses.DMASAD(1)), 0)
	test.ExpectEquality(t, mem.Read16(addresses.IOStart+addresses.DMACNTH(1)), 0)
}

func TestControlString(t *testing.T) {
	c := dma.StartTiming(dma.AtHBlank) | dma.Repeat | dma.Word32 | dma.DestControl(dma.Reload)
	test.ExpectEquality(t, c.Timing(), dma.AtHBlank)
	test.ExpectEquality(t, c.Dest(), dma.Reload)
	test.ExpectEquality(t, c.Source(), dma.Increment)
	test.ExpectEquality(t, c.String(), "src increment, dst reload, hblank, 32bit, repeat")
}
