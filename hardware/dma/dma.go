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

package dma

import (
	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/bus"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
)

// Sentinel error patterns.
const (
	InvalidChannel      = "dma: invalid channel (%d)"
	CapabilityViolation = "dma: channel %d cannot source from ROM (%#08x)"
	InvalidUnit         = "dma: invalid unit size (%d)"
	Misaligned          = "dma: %s address %#08x is not aligned for %d byte units"
	InvalidLength       = "dma: length of %d bytes is not a multiple of %d byte units"
	TooLong             = "dma: %d units is more than the channel %d maximum of %d"
)

// NumChannels is the number of DMA channels.
const NumChannels = 4

// Registers is the part of the register file used by the DMA engine.
type Registers interface {
	Peek16(offset uint32) uint16
	Poke16(offset uint32, data uint16)
	Write16(offset uint32, data uint16)
	SetHook(offset uint32, hook registers.WriteHook)
}

// Requester raises an interrupt.
type Requester interface {
	Request(src irq.Source)
}

// the number of scanlines on which channel 3 captures video.
const (
	captureStart = 2
	captureEnd   = 162
	visibleLines = 160
)

// the number of words transferred by a FIFO refill.
const fifoWords = 4

type channel struct {
	id int

	armed   bool
	control Control

	// latched addresses and count
	src   uint32
	dst   uint32
	count uint32
}

// MaxUnits returns the maximum number of units the channel can transfer.
// The value zero in DMAxCNT_L specifies the maximum.
func MaxUnits(channel int) uint32 {
	if channel == 3 {
		return 0x10000
	}
	return 0x4000
}

func (ch *channel) srcMask() uint32 {
	if ch.id == 0 {
		return 0x07ffffff
	}
	return 0x0fffffff
}

func (ch *channel) dstMask() uint32 {
	if ch.id == 3 {
		return 0x0fffffff
	}
	return 0x07ffffff
}

// DMA is the DMA transfer engine.
type DMA struct {
	io  Registers
	mem bus.CPUBus
	req Requester

	channels [NumChannels]channel
}

// NewDMA is the preferred method of initialisation for the DMA type. The
// register hooks for the four DMAxCNT_H registers are installed. The
// requester can be nil in which case interrupts are never requested.
func NewDMA(io Registers, mem bus.CPUBus, req Requester) *DMA {
	d := &DMA{
		io:  io,
		mem: mem,
		req: req,
	}
	for i := range d.channels {
		d.channels[i].id = i
		io.SetHook(addresses.DMACNTH(i), d.hook(&d.channels[i]))
	}
	return d
}

// Reset disarms every channel and clears the DMA registers.
func (d *DMA) Reset() {
	for i := range d.channels {
		d.channels[i].armed = false
		d.io.Poke16(addresses.DMASAD(i), 0)
		d.io.Poke16(addresses.DMASAD(i)+2, 0)
		d.io.Poke16(addresses.DMADAD(i), 0)
		d.io.Poke16(addresses.DMADAD(i)+2, 0)
		d.io.Poke16(addresses.DMACNTL(i), 0)
		d.io.Poke16(addresses.DMACNTH(i), 0)
	}
}

func validChannel(channel int) error {
	if channel < 0 || channel >= NumChannels {
		return curated.Errorf(InvalidChannel, channel)
	}
	return nil
}

func capable(channel int, src uint32) bool {
	return channel == 3 || !addresses.InROM(src)
}

// Armed returns true if the channel is waiting for its start timing. A
// channel with immediate timing is never armed once the register write that
// started it has returned.
func (d *DMA) Armed(channel int) bool {
	if validChannel(channel) != nil {
		return false
	}
	return d.channels[channel].armed
}

// Copy transfers length bytes from src to dst in units of the given size.
// The transfer is complete when the function returns.
func (d *DMA) Copy(channel int, src uint32, dst uint32, length uint32, unit Unit) error {
	return d.block(channel, src, dst, length, unit, SourceControl(Increment))
}

// Fill writes the unit at src repeatedly over length bytes starting at dst.
// The transfer is complete when the function returns.
func (d *DMA) Fill(channel int, src uint32, dst uint32, length uint32, unit Unit) error {
	return d.block(channel, src, dst, length, unit, SourceControl(Fixed))
}

func (d *DMA) block(channel int, src uint32, dst uint32, length uint32, unit Unit, srcControl Control) error {
	if err := validChannel(channel); err != nil {
		return err
	}
	if !capable(channel, src) {
		return curated.Errorf(CapabilityViolation, channel, src)
	}
	if !unit.Valid() {
		return curated.Errorf(InvalidUnit, unit)
	}
	if src%uint32(unit) != 0 {
		return curated.Errorf(Misaligned, "source", src, unit)
	}
	if dst%uint32(unit) != 0 {
		return curated.Errorf(Misaligned, "destination", dst, unit)
	}
	if length%uint32(unit) != 0 {
		return curated.Errorf(InvalidLength, length, unit)
	}
	if length == 0 {
		return nil
	}

	control := srcControl | DestControl(Increment) | unit.control() | StartTiming(Immediate)
	return d.Transfer(channel, src, dst, length/uint32(unit), control)
}

// Transfer programs the channel with the addresses, the number of units and
// the control word and starts it. The enable bit is implied. A count of zero
// means the maximum number of units for the channel.
//
// With immediate timing the transfer is complete when the function returns.
// Otherwise the channel is armed and the function returns immediately.
func (d *DMA) Transfer(channel int, src uint32, dst uint32, count uint32, control Control) error {
	if err := validChannel(channel); err != nil {
		return err
	}
	if !capable(channel, src) {
		return curated.Errorf(CapabilityViolation, channel, src)
	}
	if count > MaxUnits(channel) {
		return curated.Errorf(TooLong, count, channel, MaxUnits(channel))
	}

	d.io.Poke16(addresses.DMASAD(channel), uint16(src))
	d.io.Poke16(addresses.DMASAD(channel)+2, uint16(src>>16))
	d.io.Poke16(addresses.DMADAD(channel), uint16(dst))
	d.io.Poke16(addresses.DMADAD(channel)+2, uint16(dst>>16))
	d.io.Poke16(addresses.DMACNTL(channel), uint16(count))

	// clearing the enable bit first forces a rising edge
	cnth := addresses.DMACNTH(channel)
	d.io.Poke16(cnth, uint16(control&^Enable))
	d.io.Write16(cnth, uint16(control|Enable))

	return nil
}

// Stop disarms the channel. Data already transferred is not affected.
func (d *DMA) Stop(channel int) error {
	if err := validChannel(channel); err != nil {
		return err
	}
	d.disarm(&d.channels[channel])
	return nil
}

func (d *DMA) disarm(ch *channel) {
	ch.armed = false
	cnth := addresses.DMACNTH(ch.id)
	d.io.Poke16(cnth, d.io.Peek16(cnth)&^uint16(Enable))
}

func (d *DMA) hook(ch *channel) registers.WriteHook {
	return func(old uint16, written uint16, mask uint16) uint16 {
		v := Control((old &^ mask) | (written & mask))

		if !v.Is(Enable) {
			ch.armed = false
			return uint16(v)
		}

		// writing to an enabled channel without a rising edge of the
		// enable bit changes the control bits but does not restart the
		// channel
		if Control(old).Is(Enable) {
			ch.control = v
			return uint16(v)
		}

		if !capable(ch.id, d.peek32(addresses.DMASAD(ch.id))) {
			ch.armed = false
			return uint16(v &^ Enable)
		}
		d.latch(ch, v)

		// special timing on channel 0 is prohibited and never fires
		ch.armed = true

		if v.Timing() == Immediate {
			d.io.Poke16(addresses.DMACNTH(ch.id), uint16(v))
			d.start(ch)
			ch.armed = false
			return uint16(v &^ Enable)
		}

		return uint16(v)
	}
}

// latch takes the register values into the channel.
func (d *DMA) latch(ch *channel, control Control) {
	ch.control = control
	ch.src = d.peek32(addresses.DMASAD(ch.id)) & ch.srcMask()
	ch.dst = d.peek32(addresses.DMADAD(ch.id)) & ch.dstMask()
	ch.count = d.latchCount(ch)

	a := uint32(control.Unit()) - 1
	ch.src &^= a
	ch.dst &^= a
}

func (d *DMA) latchCount(ch *channel) uint32 {
	count := uint32(d.io.Peek16(addresses.DMACNTL(ch.id))) & (MaxUnits(ch.id) - 1)
	if count == 0 {
		count = MaxUnits(ch.id)
	}
	return count
}

func (d *DMA) peek32(offset uint32) uint32 {
	return uint32(d.io.Peek16(offset)) | uint32(d.io.Peek16(offset+2))<<16
}

// run moves count units and then completes the transfer.
func (d *DMA) run(ch *channel, count uint32, unit Unit, dstControl AddressControl) {
	srcControl := ch.control.Source()
	for range count {
		if unit == Unit32 {
			d.mem.Write32(ch.dst, d.mem.Read32(ch.src))
		} else {
			d.mem.Write16(ch.dst, d.mem.Read16(ch.src))
		}
		ch.src = step(ch.src, srcControl, unit)
		ch.dst = step(ch.dst, dstControl, unit)
	}
	d.complete(ch)
}

// start runs the channel as programmed by its control word.
func (d *DMA) start(ch *channel) {
	d.run(ch, ch.count, ch.control.Unit(), ch.control.Dest())
}

func step(address uint32, control AddressControl, unit Unit) uint32 {
	switch control {
	case Decrement:
		return address - uint32(unit)
	case Fixed:
		return address
	}
	return address + uint32(unit)
}

// complete either reloads the channel for the next start timing or disarms
// it. The interrupt is requested after the state of the channel is updated.
func (d *DMA) complete(ch *channel) {
	if ch.control.Is(Repeat) && ch.control.Timing() != Immediate {
		ch.count = d.latchCount(ch)
		if ch.control.Dest() == Reload {
			ch.dst = d.peek32(addresses.DMADAD(ch.id)) & ch.dstMask()
			ch.dst &^= uint32(ch.control.Unit()) - 1
		}
	} else {
		d.disarm(ch)
	}

	if ch.control.Is(IRQOnEnd) && d.req != nil {
		d.req.Request(irq.DMASource(ch.id))
	}
}

// VBlank signals the start of the vertical blanking period.
func (d *DMA) VBlank() {
	for i := range d.channels {
		ch := &d.channels[i]
		if ch.armed && ch.control.Timing() == AtVBlank {
			d.start(ch)
		}
	}
}

// HBlank signals the start of the horizontal blanking period of the
// scanline. HBlank timed channels only run for visible scanlines. The video
// capture mode of channel 3 is also driven by this function.
func (d *DMA) HBlank(line int) {
	for i := range d.channels {
		ch := &d.channels[i]
		if !ch.armed {
			continue
		}

		switch ch.control.Timing() {
		case AtHBlank:
			if line < visibleLines {
				d.start(ch)
			}
		case AtSpecial:
			if ch.id != 3 {
				continue
			}
			if line >= captureStart && line < captureEnd {
				d.start(ch)
			} else if line == captureEnd {
				d.disarm(ch)
			}
		}
	}
}

// SoundFIFO signals that the numbered sound FIFO needs refilling. Zero is
// FIFO_A and one is FIFO_B. Channels 1 and 2 with special timing and a
// destination matching the FIFO respond.
func (d *DMA) SoundFIFO(fifo int) {
	var dst uint32
	switch fifo {
	case 0:
		dst = addresses.IOStart + addresses.FIFO_A
	case 1:
		dst = addresses.IOStart + addresses.FIFO_B
	default:
		return
	}

	for i := 1; i <= 2; i++ {
		ch := &d.channels[i]
		if ch.armed && ch.control.Timing() == AtSpecial && ch.dst == dst {
			d.run(ch, fifoWords, Unit32, Fixed)
		}
	}
}
