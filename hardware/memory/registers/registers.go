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

package registers

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// WriteHook is called when the CPU writes to a 16bit register. The mask
// indicates which bits the write covers: a byte write only covers one lane of
// the register. The returned value is the value that is stored.
type WriteHook func(old uint16, written uint16, mask uint16) uint16

// FIFOSink receives each byte written to one of the sound FIFOs. The fifo
// argument is zero for FIFO_A and one for FIFO_B.
type FIFOSink interface {
	FIFOWrite(fifo int, data uint8)
}

// Registers is the IO register file.
type Registers struct {
	data  [addresses.IOSize]uint8
	hooks map[uint32]WriteHook
	sink  FIFOSink
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The built-in hooks are installed and the register file is reset.
func NewRegisters() *Registers {
	r := &Registers{
		hooks: make(map[uint32]WriteHook),
	}

	r.hooks[addresses.IF] = acknowledge
	r.hooks[addresses.VCOUNT] = readOnly
	r.hooks[addresses.KEYINPUT] = readOnly
	r.hooks[addresses.DISPSTAT] = dispstat

	r.Reset()

	return r
}

// Reset clears every register. KEYINPUT is active-low so it is reset to the
// "no buttons held" state. Hooks are not called and not removed.
func (r *Registers) Reset() {
	clear(r.data[:])
	r.Poke16(addresses.KEYINPUT, addresses.KeyinputMask)
}

// SetHook installs (or replaces) the write hook for the 16bit register at the
// offset. A nil hook returns the register to plain memory behaviour.
func (r *Registers) SetHook(offset uint32, hook WriteHook) {
	offset = halfword(offset)
	if hook == nil {
		delete(r.hooks, offset)
		return
	}
	r.hooks[offset] = hook
}

// SetFIFOSink sets the destination for bytes written to the sound FIFOs. A
// nil sink discards FIFO data.
func (r *Registers) SetFIFOSink(sink FIFOSink) {
	r.sink = sink
}

func halfword(offset uint32) uint32 {
	return (offset % addresses.IOSize) &^ 0x01
}

// fifo returns the FIFO index for the offset or -1 if offset is not in either
// FIFO.
func fifo(offset uint32) int {
	switch {
	case offset >= addresses.FIFO_A && offset < addresses.FIFO_A+4:
		return 0
	case offset >= addresses.FIFO_B && offset < addresses.FIFO_B+4:
		return 1
	}
	return -1
}

// Read8 returns the byte at the offset.
func (r *Registers) Read8(offset uint32) uint8 {
	return r.data[offset%addresses.IOSize]
}

// Read16 returns the 16bit register containing the offset.
func (r *Registers) Read16(offset uint32) uint16 {
	return r.Peek16(offset)
}

// Read32 returns the 32bit word containing the offset.
func (r *Registers) Read32(offset uint32) uint32 {
	offset = halfword(offset) &^ 0x02
	return uint32(r.Peek16(offset)) | uint32(r.Peek16(offset+2))<<16
}

// Write8 writes a single byte lane of a 16bit register.
func (r *Registers) Write8(offset uint32, data uint8) {
	offset %= addresses.IOSize
	if f := fifo(offset); f >= 0 {
		if r.sink != nil {
			r.sink.FIFOWrite(f, data)
		}
		return
	}

	if offset&0x01 == 0x01 {
		r.write(halfword(offset), uint16(data)<<8, 0xff00)
	} else {
		r.write(offset, uint16(data), 0x00ff)
	}
}

// Write16 writes to the 16bit register containing the offset.
func (r *Registers) Write16(offset uint32, data uint16) {
	offset = halfword(offset)
	if fifo(offset) >= 0 {
		r.Write8(offset, uint8(data))
		r.Write8(offset+1, uint8(data>>8))
		return
	}
	r.write(offset, data, 0xffff)
}

// Write32 writes to the pair of 16bit registers containing the offset. The
// lower register is written first.
func (r *Registers) Write32(offset uint32, data uint32) {
	offset = halfword(offset) &^ 0x02
	r.Write16(offset, uint16(data))
	r.Write16(offset+2, uint16(data>>16))
}

func (r *Registers) write(offset uint32, data uint16, mask uint16) {
	old := r.Peek16(offset)
	if hook, ok := r.hooks[offset]; ok {
		r.Poke16(offset, hook(old, data, mask))
		return
	}
	r.Poke16(offset, merge(old, data, mask))
}

// Peek16 returns the 16bit register containing the offset. No side effects.
func (r *Registers) Peek16(offset uint32) uint16 {
	offset = halfword(offset)
	return binary.LittleEndian.Uint16(r.data[offset:])
}

// Poke16 sets the 16bit register containing the offset. Write hooks are not
// called and the FIFO sink is not notified.
func (r *Registers) Poke16(offset uint32, data uint16) {
	offset = halfword(offset)
	binary.LittleEndian.PutUint16(r.data[offset:], data)
}

// Snapshot returns a copy of the entire register file.
func (r *Registers) Snapshot() [addresses.IOSize]uint8 {
	return r.data
}

func merge(old uint16, written uint16, mask uint16) uint16 {
	return (old &^ mask) | (written & mask)
}

// writing a set bit to IF clears that bit.
func acknowledge(old uint16, written uint16, mask uint16) uint16 {
	return old &^ (written & mask)
}

func readOnly(old uint16, _ uint16, _ uint16) uint16 {
	return old
}

// the status bits of DISPSTAT are driven by the display timing.
func dispstat(old uint16, written uint16, mask uint16) uint16 {
	mask &^= addresses.DispstatStatusMask
	return merge(old, written, mask)
}
