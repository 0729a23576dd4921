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
	"fmt"
	"strings"
)

// Control is the value of a DMAxCNT_H register.
type Control uint16

// AddressControl specifies how an address changes after each unit of a
// transfer.
type AddressControl int

// List of address controls. Reload is only valid for the destination address
// and behaves like Increment except that the address is reloaded when a
// repeating transfer restarts.
const (
	Increment AddressControl = iota
	Decrement
	Fixed
	Reload
)

func (a AddressControl) String() string {
	switch a {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Fixed:
		return "fixed"
	case Reload:
		return "reload"
	}
	return "unknown"
}

// Timing specifies when a transfer starts.
type Timing int

// List of start timings.
const (
	Immediate Timing = iota
	AtVBlank
	AtHBlank
	AtSpecial
)

func (t Timing) String() string {
	switch t {
	case Immediate:
		return "immediate"
	case AtVBlank:
		return "vblank"
	case AtHBlank:
		return "hblank"
	case AtSpecial:
		return "special"
	}
	return "unknown"
}

// Bits of the control word. The address control and timing fields are
// composed with DestControl(), SourceControl() and StartTiming().
const (
	Repeat   Control = 0x0200
	Word32   Control = 0x0400
	IRQOnEnd Control = 0x4000
	Enable   Control = 0x8000
)

const (
	destShift   = 5
	sourceShift = 7
	timingShift = 12
)

// DestControl returns the control bits for the destination address control.
func DestControl(a AddressControl) Control {
	return Control(a&0x03) << destShift
}

// SourceControl returns the control bits for the source address control.
func SourceControl(a AddressControl) Control {
	return Control(a&0x03) << sourceShift
}

// StartTiming returns the control bits for the start timing.
func StartTiming(t Timing) Control {
	return Control(t&0x03) << timingShift
}

// Dest returns the destination address control.
func (c Control) Dest() AddressControl {
	return AddressControl(c>>destShift) & 0x03
}

// Source returns the source address control.
func (c Control) Source() AddressControl {
	return AddressControl(c>>sourceShift) & 0x03
}

// Timing returns the start timing.
func (c Control) Timing() Timing {
	return Timing(c>>timingShift) & 0x03
}

// Is returns true if all the bits in o are set in c.
func (c Control) Is(o Control) bool {
	return c&o == o
}

// Unit returns the unit size of the transfer.
func (c Control) Unit() Unit {
	if c.Is(Word32) {
		return Unit32
	}
	return Unit16
}

func (c Control) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("src %s, dst %s, %s, %dbit", c.Source(), c.Dest(), c.Timing(), c.Unit()*8))
	if c.Is(Repeat) {
		s.WriteString(", repeat")
	}
	if c.Is(IRQOnEnd) {
		s.WriteString(", irq")
	}
	if c.Is(Enable) {
		s.WriteString(", enabled")
	}
	return s.String()
}

// Unit is the size in bytes of a single unit of transfer.
type Unit uint32

// List of valid units.
const (
	Unit16 Unit = 2
	Unit32 Unit = 4
)

// Valid returns true if the unit is one of the valid units.
func (u Unit) Valid() bool {
	return u == Unit16 || u == Unit32
}

func (u Unit) control() Control {
	if u == Unit32 {
		return Word32
	}
	return 0
}
