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

package host_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware"
	"github.com/jetsetilly/gopherhal/hardware/irq"
	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/hardware/sram"
	"github.com/jetsetilly/gopherhal/host"
	"github.com/jetsetilly/gopherhal/host/preferences"
	"github.com/jetsetilly/gopherhal/test"
)

func newHost(t *testing.T, savePath string) (*hardware.Console, *host.Host) {
	t.Helper()

	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.FrameLimit.Set(false))
	test.DemandSuccess(t, p.AutosaveInterval.Set(2))
	test.DemandSuccess(t, p.KeyHold.Set(3))

	con := hardware.NewConsole()
	con.SetDiagnostic(nil)
	h, err := host.NewHost(con, p, savePath)
	test.DemandSuccess(t, err)

	return con, h
}

func waitFrames(con *hardware.Console, n int) {
	for range n {
		con.WaitVBlank()
	}
}

func TestRun(t *testing.T) {
	_, h := newHost(t, "")

	err := h.Run(func(con *hardware.Console) error {
		con.IRQ.Init()
		test.ExpectSuccess(t, con.IRQ.Enable(irq.VBlank))
		waitFrames(con, 10)
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Frames(), 10)
}

func TestApplicationError(t *testing.T) {
	_, h := newHost(t, "")

	appErr := errors.New("application error")
	err := h.Run(func(con *hardware.Console) error {
		return appErr
	})
	test.ExpectEquality(t, err, appErr)

	err = h.Run(func(con *hardware.Console) error {
		panic("oops")
	})
	test.ExpectSuccess(t, curated.Has(err, "host: %v"))
}

func TestPress(t *testing.T) {
	_, h := newHost(t, "")

	var held []keypad.Buttons

	h.Press(keypad.A | keypad.Up)
	err := h.Run(func(con *hardware.Console) error {
		con.IRQ.Init()
		test.ExpectSuccess(t, con.IRQ.Enable(irq.VBlank))
		for range 5 {
			con.WaitVBlank()
			con.Keypad.Update()
			held = append(held, con.Keypad.Held())
		}
		return nil
	})
	test.ExpectSuccess(t, err)

	// buttons are held for three frames
	test.DemandEquality(t, len(held), 5)
	test.ExpectEquality(t, held[0], keypad.A|keypad.Up)
	test.ExpectEquality(t, held[2], keypad.A|keypad.Up)
	test.ExpectEquality(t, held[3], keypad.None)
	test.ExpectEquality(t, held[4], keypad.None)
}

func TestQuit(t *testing.T) {
	_, h := newHost(t, "")

	err := h.Run(func(con *hardware.Console) error {
		con.IRQ.Init()
		test.ExpectSuccess(t, con.IRQ.Enable(irq.VBlank))
		waitFrames(con, 3)
		h.Quit()
		con.Halt("finished")
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Frames(), 3)
}

func TestAutosave(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "sram")
	_, h := newHost(t, pth)

	err := h.Run(func(con *hardware.Console) error {
		con.IRQ.Init()
		test.ExpectSuccess(t, con.IRQ.Enable(irq.VBlank))
		test.ExpectSuccess(t, con.SRAM.Write(sram.Start+0x10, []uint8{1, 2, 3}))
		waitFrames(con, 2)
		return nil
	})
	test.ExpectSuccess(t, err)

	d, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0x10], uint8(1))
	test.ExpectEquality(t, d[0x12], uint8(3))
	test.ExpectEquality(t, d[0x13], uint8(0xff))

	// the save file is loaded into a new console
	con, h := newHost(t, pth)
	test.ExpectEquality(t, con.Mem.SRAM[0x11], uint8(2))
	test.ExpectSuccess(t, h.Run(func(_ *hardware.Console) error { return nil }))
}
