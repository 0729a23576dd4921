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
	"fmt"

	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Source identifies an interrupt source. The value of a Source is both the
// bit position in IE and IF and the slot in the vector table.
type Source int

// List of valid interrupt sources.
const (
	VBlank Source = iota
	HBlank
	VCount
	Timer0
	Timer1
	Timer2
	Timer3
	Serial
	DMA0
	DMA1
	DMA2
	DMA3
	Keypad
	Cartridge

	// the number of valid sources. not a source in itself
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case HBlank:
		return "HBlank"
	case VCount:
		return "VCount"
	case Timer0, Timer1, Timer2, Timer3:
		return fmt.Sprintf("Timer%d", s-Timer0)
	case Serial:
		return "Serial"
	case DMA0, DMA1, DMA2, DMA3:
		return fmt.Sprintf("DMA%d", s-DMA0)
	case Keypad:
		return "Keypad"
	case Cartridge:
		return "Cartridge"
	}
	return fmt.Sprintf("unknown source (%d)", int(s))
}

// Valid returns true if the Source is one of the enumerated sources.
func (s Source) Valid() bool {
	return s >= VBlank && s < NumSources
}

// Bit returns the IE/IF bit for the source. The result for an invalid source
// is zero.
func (s Source) Bit() uint16 {
	if !s.Valid() {
		return 0
	}
	return 1 << uint(s)
}

// DMASource returns the interrupt source for the numbered DMA channel.
func DMASource(channel int) Source {
	return DMA0 + Source(channel)
}

// returns the DISPSTAT interrupt enable bit for sources that are driven by
// the display. returns false if the source is not display linked.
func (s Source) dispstat() (uint16, bool) {
	switch s {
	case VBlank:
		return addresses.DispstatVBlankIRQ, true
	case HBlank:
		return addresses.DispstatHBlankIRQ, true
	case VCount:
		return addresses.DispstatVCountIRQ, true
	}
	return 0, false
}
