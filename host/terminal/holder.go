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

package terminal

import "github.com/jetsetilly/gopherhal/hardware/keypad"

// the number of buttons on the keypad
const numButtons = 10

// Holder keeps buttons held for a number of frames after they have been
// pressed.
type Holder struct {
	hold      int
	remaining [numButtons]int
}

// NewHolder is the preferred method of initialisation for the Holder type. A
// hold value of less than one is treated as one.
func NewHolder(hold int) *Holder {
	return &Holder{
		hold: max(hold, 1),
	}
}

// Press the buttons. A button that is already held has its hold time
// restarted.
func (h *Holder) Press(b keypad.Buttons) {
	for i := range numButtons {
		if b&(1<<i) != 0 {
			h.remaining[i] = h.hold
		}
	}
}

// Held returns the buttons that are currently held.
func (h *Holder) Held() keypad.Buttons {
	var b keypad.Buttons
	for i := range numButtons {
		if h.remaining[i] > 0 {
			b |= 1 << i
		}
	}
	return b
}

// Tick should be called once per frame. It returns the buttons that are held
// for the frame.
func (h *Holder) Tick() keypad.Buttons {
	b := h.Held()
	for i := range numButtons {
		if h.remaining[i] > 0 {
			h.remaining[i]--
		}
	}
	return b
}

// Release all buttons immediately.
func (h *Holder) Release() {
	h.remaining = [numButtons]int{}
}
