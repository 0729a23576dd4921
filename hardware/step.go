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

package hardware

import (
	"runtime"

	"github.com/jetsetilly/gopherhal/hardware/display"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// the number of samples transferred by a single FIFO refill.
const fifoSamples = 16

// Step advances the display timing by one phase and services the events that
// occur. The events are returned.
//
// If Shutdown() has been called the calling goroutine exits at the start of
// VBlank. Deferred calls are run as normal.
func (con *Console) Step() display.Events {
	ev := con.Display.Step()
	line := con.Display.Line()

	if ev.Has(display.HBlankStart) {
		con.DMA.HBlank(line)
		con.request(irq.HBlank)
		return ev
	}

	if ev.Has(display.VBlankStart) {
		if con.shutdown.Load() {
			runtime.Goexit()
		}

		con.DMA.VBlank()
		if con.frameHook != nil {
			con.frameHook()
		}
		if con.request(irq.VBlank) {
			con.vblanks++
		}
	}

	if ev.Has(display.VCountMatch) {
		con.request(irq.VCount)
	}

	con.soundFIFO()
	con.checkKeypad()

	return ev
}

func (con *Console) soundFIFO() {
	if con.fifoRate == 0 {
		return
	}
	if con.IO.Peek16(addresses.SOUNDCNT_X)&addresses.SoundcntXMasterEnable == 0 {
		return
	}

	con.fifoAcc += float64(con.fifoRate) / (fifoSamples * display.ScanlinesPerFrame * display.RefreshRate)
	for con.fifoAcc >= 1.0 {
		con.fifoAcc -= 1.0
		con.DMA.SoundFIFO(0)
		con.DMA.SoundFIFO(1)
	}
}

// RunFrame steps the console until the start of the next frame.
func (con *Console) RunFrame() {
	for !con.Step().Has(display.FrameStart) {
	}
}

// WaitVBlank is the frame-wait primitive. It suspends the application until
// the next VBlank interrupt has been serviced. There is no timeout. If the
// VBlank interrupt is disabled the function does not return.
func (con *Console) WaitVBlank() {
	n := con.vblanks
	for con.vblanks == n {
		con.Step()
	}
}
