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
	"io"
	"os"
	"sync/atomic"

	"github.com/jetsetilly/gopherhal/hardware/bios"
	"github.com/jetsetilly/gopherhal/hardware/display"
	"github.com/jetsetilly/gopherhal/hardware/dma"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/hardware/memory"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
	"github.com/jetsetilly/gopherhal/hardware/sram"
)

// Console is the main container for the components of the console.
type Console struct {
	IO      *registers.Registers
	Mem     *memory.Memory
	IRQ     *irq.Controller
	Keypad  *keypad.Keypad
	DMA     *dma.DMA
	SRAM    *sram.SRAM
	Display *display.Display
	BIOS    bios.Services

	// called at the start of every VBlank before the VBlank interrupt
	frameHook func()

	// destination of the diagnostic written by Halt()
	diagnostic io.Writer

	// sound FIFO refill requests per second. zero disables requests
	fifoRate int
	fifoAcc  float64

	// the state of the keypad interrupt condition when last checked
	keypadCondition bool

	// the number of VBlank interrupts that have been serviced
	vblanks int

	halted   bool
	shutdown atomic.Bool
}

// NewConsole creates a new Console and everything associated with the
// hardware.
func NewConsole() *Console {
	con := &Console{
		diagnostic: os.Stderr,
	}

	con.IO = registers.NewRegisters()
	con.Mem = memory.NewMemory(con.IO)
	con.IRQ = irq.NewController(con.IO)
	con.Keypad = keypad.NewKeypad(con.IO)
	con.DMA = dma.NewDMA(con.IO, con.Mem, con)
	con.SRAM = sram.NewSRAM(con.Mem)
	con.Display = display.NewDisplay(con.IO)
	con.BIOS = bios.NewEmulated(con.Mem, con.IO)

	return con
}

// Reset returns the console to its power-on state. ROM, BIOS and the contents
// of SRAM are preserved. The interrupt controller is not initialised and so
// interrupts are disabled until the application calls IRQ.Init().
func (con *Console) Reset() {
	sramData := append([]uint8(nil), con.Mem.SRAM...)

	con.IO.Reset()
	con.Mem.Reset()
	copy(con.Mem.SRAM, sramData)

	con.DMA.Reset()
	con.Keypad.Reset()
	con.Display.Reset()
	con.fifoAcc = 0
	con.keypadCondition = false
	con.vblanks = 0
	con.halted = false
}

// SetFrameHook sets the function that is called at the start of every VBlank.
// The hook runs on the application goroutine before the VBlank interrupt is
// dispatched.
func (con *Console) SetFrameHook(hook func()) {
	con.frameHook = hook
}

// SetDiagnostic sets the destination of the diagnostic written by Halt(). A
// nil writer discards the diagnostic.
func (con *Console) SetDiagnostic(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	con.diagnostic = w
}

// SetFIFORate sets the sample rate of the sound FIFOs. Each refill request
// transfers sixteen samples.
func (con *Console) SetFIFORate(rate int) {
	con.fifoRate = max(rate, 0)
	con.fifoAcc = 0
}

// Request raises the interrupt source and dispatches it. Implements the
// dma.Requester interface.
func (con *Console) Request(src irq.Source) {
	con.request(src)
}

func (con *Console) request(src irq.Source) bool {
	con.IRQ.Raise(src)
	return con.IRQ.Dispatch(src)
}

// SetKeys drives the keypad lines. The buttons in the mask are held and all
// other buttons are released. The keypad interrupt is requested if the keypad
// interrupt condition becomes true.
func (con *Console) SetKeys(held keypad.Buttons) {
	con.Keypad.SetLines(held)
	con.checkKeypad()
}

// SetKeyLines drives the keypad lines with an active-low raw value as it
// would appear in KEYINPUT.
func (con *Console) SetKeyLines(raw uint16) {
	con.SetKeys(keypad.Buttons(^raw) & keypad.All)
}

func (con *Console) checkKeypad() {
	cond := con.Keypad.ConditionMet()
	if cond && !con.keypadCondition {
		con.request(irq.Keypad)
	}
	con.keypadCondition = cond
}

// Halted returns true if Halt() has been called. This will only ever be seen
// to be true by the frame hook or by an interrupt handler.
func (con *Console) Halted() bool {
	return con.halted
}

// VBlanks returns the number of VBlank interrupts that have been serviced
// since the last Reset().
func (con *Console) VBlanks() int {
	return con.vblanks
}

// Shutdown tells the substrate to end the application goroutine at the start
// of the next VBlank. Safe to call from any goroutine.
func (con *Console) Shutdown() {
	con.shutdown.Store(true)
}

// ShuttingDown returns true if Shutdown() has been called.
func (con *Console) ShuttingDown() bool {
	return con.shutdown.Load()
}
