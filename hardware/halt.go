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
	"fmt"

	"github.com/jetsetilly/gopherhal/hardware/bios"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// registers of the blending and window effects. cleared by Halt()
var effectRegisters = []uint32{
	addresses.WIN0H, addresses.WIN1H, addresses.WIN0V, addresses.WIN1V,
	addresses.WININ, addresses.WINOUT, addresses.MOSAIC,
	addresses.BLDCNT, addresses.BLDALPHA, addresses.BLDY,
}

// Halt is the terminal state for a failed invariant. Interrupts are disabled,
// the DMA channels and sound registers are reset and the blending and window
// effects are cleared. The diagnostic is written to the diagnostic writer.
// The VBlank interrupt is then reenabled and the console waits on it forever.
//
// Halt does not return. The application goroutine can end only through
// Shutdown().
func (con *Console) Halt(diagnostic string) {
	con.halted = true

	con.IRQ.SetMasterEnable(false)
	con.DMA.Reset()
	con.BIOS.RegisterRAMReset(bios.ResetSound)
	for _, r := range effectRegisters {
		con.IO.Poke16(r, 0)
	}

	fmt.Fprintln(con.diagnostic, diagnostic)

	con.IRQ.Init()
	_ = con.IRQ.Enable(irq.VBlank)

	for {
		con.WaitVBlank()
	}
}
