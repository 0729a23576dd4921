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

package irq

import (
	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Sentinel error patterns.
const (
	InvalidSource = "irq: invalid interrupt source (%d)"
)

// Registers is the part of the register file used by the controller.
type Registers interface {
	Peek16(offset uint32) uint16
	Poke16(offset uint32, data uint16)
	Write16(offset uint32, data uint16)
}

// Handler is called when an interrupt is dispatched.
type Handler func()

// ScanlinesPerFrame is the modulus of the VCount target.
const ScanlinesPerFrame = 228

// Controller is the interrupt controller.
type Controller struct {
	io Registers

	// vector table. a nil entry is an absent handler
	vectors [NumSources]Handler

	// a source is marked as running for the duration of its handler
	running [NumSources]bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The controller is not initialised and Init() should be called before
// using interrupts.
func NewController(io Registers) *Controller {
	return &Controller{
		io: io,
	}
}

// Init clears the vector table, sets the master enable, clears the
// per-source enable mask and acknowledges any pending flags. It is safe to
// call Init() more than once.
func (c *Controller) Init() {
	clear(c.vectors[:])
	c.io.Poke16(addresses.IE, 0x0000)
	c.io.Write16(addresses.IF, 0xffff)
	c.io.Poke16(addresses.IME, addresses.IMEEnable)
}

// SetHandler installs the handler for the source. A nil handler removes any
// existing handler. The enable masks are not changed.
func (c *Controller) SetHandler(src Source, handler Handler) error {
	if !src.Valid() {
		return curated.Errorf(InvalidSource, int(src))
	}
	c.vectors[src] = handler
	return nil
}

// HasHandler returns true if a handler is installed for the source.
func (c *Controller) HasHandler(src Source) bool {
	return src.Valid() && c.vectors[src] != nil
}

// Enable sets the source's bit in IE. For the display linked sources the
// corresponding interrupt enable in DISPSTAT is also set.
func (c *Controller) Enable(src Source) error {
	if !src.Valid() {
		return curated.Errorf(InvalidSource, int(src))
	}
	c.io.Poke16(addresses.IE, c.io.Peek16(addresses.IE)|src.Bit())
	if bit, ok := src.dispstat(); ok {
		c.io.Poke16(addresses.DISPSTAT, c.io.Peek16(addresses.DISPSTAT)|bit)
	}
	return nil
}

// Disable clears the source's bit in IE. For the display linked sources the
// corresponding interrupt enable in DISPSTAT is also cleared.
func (c *Controller) Disable(src Source) error {
	if !src.Valid() {
		return curated.Errorf(InvalidSource, int(src))
	}
	c.io.Poke16(addresses.IE, c.io.Peek16(addresses.IE)&^src.Bit())
	if bit, ok := src.dispstat(); ok {
		c.io.Poke16(addresses.DISPSTAT, c.io.Peek16(addresses.DISPSTAT)&^bit)
	}
	return nil
}

// Enabled returns true if the source can currently be delivered.
func (c *Controller) Enabled(src Source) bool {
	if !src.Valid() {
		return false
	}
	if c.io.Peek16(addresses.IME)&addresses.IMEEnable == 0 {
		return false
	}
	if c.io.Peek16(addresses.IE)&src.Bit() == 0 {
		return false
	}
	if bit, ok := src.dispstat(); ok {
		return c.io.Peek16(addresses.DISPSTAT)&bit == bit
	}
	return true
}

// SetMasterEnable sets or clears IME.
func (c *Controller) SetMasterEnable(on bool) {
	if on {
		c.io.Poke16(addresses.IME, addresses.IMEEnable)
	} else {
		c.io.Poke16(addresses.IME, 0x0000)
	}
}

// SetReferenceVCount sets the scanline that triggers the VCount interrupt.
// Other bits in DISPSTAT are preserved. Values outside the range of
// scanlines wrap.
func (c *Controller) SetReferenceVCount(y int) {
	y %= ScanlinesPerFrame
	if y < 0 {
		y += ScanlinesPerFrame
	}
	v := c.io.Peek16(addresses.DISPSTAT) &^ addresses.DispstatVCountTarget
	v |= uint16(y) << addresses.DispstatVCountShift
	c.io.Poke16(addresses.DISPSTAT, v)
}

// ReferenceVCount returns the scanline that triggers the VCount interrupt.
func (c *Controller) ReferenceVCount() int {
	return int(c.io.Peek16(addresses.DISPSTAT) >> addresses.DispstatVCountShift)
}

// Pending returns true if the source's bit in IF is set.
func (c *Controller) Pending(src Source) bool {
	return src.Valid() && c.io.Peek16(addresses.IF)&src.Bit() != 0
}

// Raise sets the source's bit in IF. It does not dispatch the interrupt.
func (c *Controller) Raise(src Source) {
	if !src.Valid() {
		return
	}
	c.io.Poke16(addresses.IF, c.io.Peek16(addresses.IF)|src.Bit())
}

// Dispatch delivers the event to the handler for the source if the source is
// enabled at all three levels. It returns true if the event was serviced, in
// which case the source's bit in IF has been acknowledged. An event is
// serviced even if there is no handler installed.
//
// An invalid source, a disabled source or a source whose handler is already
// running is not serviced.
func (c *Controller) Dispatch(src Source) bool {
	if !c.Enabled(src) {
		return false
	}
	if c.running[src] {
		return false
	}

	if h := c.vectors[src]; h != nil {
		c.running[src] = true
		func() {
			defer func() { c.running[src] = false }()
			h()
		}()
	}

	c.io.Write16(addresses.IF, src.Bit())

	return true
}
