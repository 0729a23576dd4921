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

package display

import (
	"strings"

	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Timing constants.
const (
	ScanlinesPerFrame = 228
	VisibleScanlines  = 160

	// the last scanline of the VBlank period has the VBlank flag cleared
	vblankFlagEnd = ScanlinesPerFrame - 1

	// the refresh rate of the display
	RefreshRate = 59.7275
)

// Events is the set of timing events that happen on a single Step().
type Events uint8

// List of events.
const (
	LineStart Events = 1 << iota
	HBlankStart
	VBlankStart
	VCountMatch
	FrameStart
)

// Has returns true if all events in o are part of e.
func (e Events) Has(o Events) bool {
	return e&o == o
}

func (e Events) String() string {
	var n []string
	if e.Has(FrameStart) {
		n = append(n, "frame")
	}
	if e.Has(LineStart) {
		n = append(n, "line")
	}
	if e.Has(VBlankStart) {
		n = append(n, "vblank")
	}
	if e.Has(VCountMatch) {
		n = append(n, "vcount")
	}
	if e.Has(HBlankStart) {
		n = append(n, "hblank")
	}
	return strings.Join(n, "+")
}

// Registers is the part of the register file used by the display.
type Registers interface {
	Peek16(offset uint32) uint16
	Poke16(offset uint32, data uint16)
}

// Display is the display timing generator.
type Display struct {
	io Registers

	line   int
	hblank bool
	frame  int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(io Registers) *Display {
	d := &Display{io: io}
	d.Reset()
	return d
}

// Reset puts the display at the start of the first scanline.
func (d *Display) Reset() {
	d.line = 0
	d.hblank = false
	d.frame = 0
	d.update()
}

// Line returns the current scanline.
func (d *Display) Line() int {
	return d.line
}

// Frame returns the number of frames that have started since Reset().
func (d *Display) Frame() int {
	return d.frame
}

// InHBlank returns true if the display is in the horizontal blanking phase.
func (d *Display) InHBlank() bool {
	return d.hblank
}

// InVBlank returns true if the current scanline is in the vertical blanking
// period.
func (d *Display) InVBlank() bool {
	return d.line >= VisibleScanlines
}

// Step moves the display to the next phase and returns the events that
// happened.
func (d *Display) Step() Events {
	if !d.hblank {
		d.hblank = true
		d.update()
		return HBlankStart
	}

	d.hblank = false
	d.line++
	if d.line >= ScanlinesPerFrame {
		d.line = 0
	}

	ev := LineStart
	if d.line == 0 {
		d.frame++
		ev |= FrameStart
	}
	if d.line == VisibleScanlines {
		ev |= VBlankStart
	}
	if d.update() {
		ev |= VCountMatch
	}

	return ev
}

// update VCOUNT and the status flags of DISPSTAT. returns true if the
// VCount flag is set.
func (d *Display) update() bool {
	d.io.Poke16(addresses.VCOUNT, uint16(d.line))

	stat := d.io.Peek16(addresses.DISPSTAT) &^ addresses.DispstatStatusMask
	if d.line >= VisibleScanlines && d.line < vblankFlagEnd {
		stat |= addresses.DispstatVBlank
	}
	if d.hblank {
		stat |= addresses.DispstatHBlank
	}

	match := int(stat>>addresses.DispstatVCountShift) == d.line
	if match {
		stat |= addresses.DispstatVCount
	}
	d.io.Poke16(addresses.DISPSTAT, stat)

	return match
}
