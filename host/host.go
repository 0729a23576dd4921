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

package host

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware"
	"github.com/jetsetilly/gopherhal/hardware/display"
	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/host/autosave"
	"github.com/jetsetilly/gopherhal/host/limiter"
	"github.com/jetsetilly/gopherhal/host/preferences"
	"github.com/jetsetilly/gopherhal/host/terminal"
	"github.com/jetsetilly/gopherhal/logger"
	"github.com/jetsetilly/gopherhal/prefs"
)

// Application is the entry point of an application running on the console.
type Application func(con *hardware.Console) error

// Host services for a single console.
type Host struct {
	con   *hardware.Console
	prefs *preferences.Preferences

	Limiter *limiter.Limiter
	save    *autosave.Autosave

	// key presses from other goroutines. drained at the start of every frame
	crit   sync.Mutex
	queued []keypad.Buttons

	holder *terminal.Holder

	// the buttons applied to the console in the previous frame. the keypad is
	// left alone while the holder has nothing to say so that the application
	// has control of the keypad lines
	held keypad.Buttons

	frames int
}

// NewHost is the preferred method of initialisation for the Host type. An
// empty savePath disables autosave.
func NewHost(con *hardware.Console, p *preferences.Preferences, savePath string) (*Host, error) {
	h := &Host{
		con:     con,
		prefs:   p,
		Limiter: limiter.NewLimiter(display.RefreshRate),
		holder:  terminal.NewHolder(p.KeyHold.Get().(int)),
	}

	h.Limiter.Active.Store(p.FrameLimit.Get().(bool))
	h.Limiter.SetLimit(float32(p.FPS.Get().(float64)))

	p.FrameLimit.SetHookPost(func(v prefs.Value) error {
		h.Limiter.Active.Store(v.(bool))
		return nil
	})
	p.FPS.SetHookPost(func(v prefs.Value) error {
		h.Limiter.SetLimit(float32(v.(float64)))
		return nil
	})

	if savePath != "" {
		var err error
		h.save, err = autosave.NewAutosave(savePath, con.Mem.SRAM, p.AutosaveInterval.Get().(int))
		if err != nil {
			h.Limiter.Stop()
			return nil, curated.Errorf("host: %v", err)
		}
	}

	con.SetFIFORate(p.FIFORate.Get().(int))
	con.SetFrameHook(h.frame)

	return h, nil
}

// Press queues buttons to be pressed at the start of the next frame. Safe to
// call from any goroutine.
func (h *Host) Press(b keypad.Buttons) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.queued = append(h.queued, b)
}

// Quit tells the application to end at the start of the next VBlank. Safe to
// call from any goroutine.
func (h *Host) Quit() {
	h.con.Shutdown()
}

// Frames returns the number of frames that have been seen by the host.
func (h *Host) Frames() int {
	return h.frames
}

func (h *Host) frame() {
	h.frames++

	h.Limiter.CheckFrame()

	h.crit.Lock()
	for _, b := range h.queued {
		h.holder.Press(b)
	}
	h.queued = h.queued[:0]
	h.crit.Unlock()

	held := h.holder.Tick()
	if held != h.held {
		h.con.SetKeys(held)
		h.held = held
	}

	if h.save != nil {
		h.save.Tick()
	}
}

// Run the application on a new goroutine and wait for it to end. The save file
// is flushed before returning.
func (h *Host) Run(app Application) error {
	var err error
	done := make(chan bool)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				err = curated.Errorf("host: %v", fmt.Sprintf("application panic: %v", r))
			}
		}()
		err = app(h.con)
	}()
	<-done

	h.Limiter.Stop()

	if h.con.ShuttingDown() {
		logger.Logf(logger.Allow, "host", "application ended by shutdown after %d frames", h.frames)
	}

	if h.save != nil {
		if serr := h.save.Flush(); serr != nil {
			logger.Log(logger.Allow, "host", serr)
			if err == nil {
				err = serr
			}
		}
	}

	return err
}
