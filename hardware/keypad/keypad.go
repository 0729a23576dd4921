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

package keypad

import (
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Registers is the part of the register file used by the keypad.
type Registers interface {
	Peek16(offset uint32) uint16
	Poke16(offset uint32, data uint16)
}

// Keypad is the keypad state machine.
type Keypad struct {
	io Registers

	held     Buttons
	previous Buttons
	pressed  Buttons
	released Buttons
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad(io Registers) *Keypad {
	return &Keypad{io: io}
}

// Reset clears the sampled state. The raw lines are not changed.
func (k *Keypad) Reset() {
	k.held = None
	k.previous = None
	k.pressed = None
	k.released = None
}

// Update samples the raw lines and derives the button edges.
func (k *Keypad) Update() {
	k.previous = k.held
	k.held = k.Lines()
	k.pressed = k.held &^ k.previous
	k.released = k.previous &^ k.held
}

// Held returns the buttons held at the most recent sample.
func (k *Keypad) Held() Buttons {
	return k.held
}

// Pressed returns the buttons that were not held at the previous sample but
// are held at the most recent sample.
func (k *Keypad) Pressed() Buttons {
	return k.pressed
}

// Released returns the buttons that were held at the previous sample but are
// not held at the most recent sample.
func (k *Keypad) Released() Buttons {
	return k.released
}

// Lines returns the buttons currently held according to the raw lines. This
// is not a sample and does not change the state returned by Held(), etc.
func (k *Keypad) Lines() Buttons {
	return Buttons(^k.io.Peek16(addresses.KEYINPUT)) & All
}

// SetLines drives the raw lines from the substrate. The buttons in the mask
// are held and all other buttons are released.
func (k *Keypad) SetLines(held Buttons) {
	k.io.Poke16(addresses.KEYINPUT, uint16(^held&All))
}

// IRQEnableAll requests the keypad interrupt when all the buttons in the mask
// are held. Any previous condition is replaced.
func (k *Keypad) IRQEnableAll(mask Buttons) {
	k.io.Poke16(addresses.KEYCNT, uint16(mask&All)|addresses.KeycntIRQEnable|addresses.KeycntCondAND)
}

// IRQEnableAny requests the keypad interrupt when any of the buttons in the
// mask are held. Any previous condition is replaced.
func (k *Keypad) IRQEnableAny(mask Buttons) {
	k.io.Poke16(addresses.KEYCNT, uint16(mask&All)|addresses.KeycntIRQEnable)
}

// IRQDisable clears the keypad interrupt condition.
func (k *Keypad) IRQDisable() {
	k.io.Poke16(addresses.KEYCNT, 0x0000)
}

// ConditionMet returns true if the interrupt condition in KEYCNT is enabled
// and satisfied by the raw lines. An empty mask is never satisfied.
func (k *Keypad) ConditionMet() bool {
	cnt := k.io.Peek16(addresses.KEYCNT)
	if cnt&addresses.KeycntIRQEnable == 0 {
		return false
	}

	mask := Buttons(cnt) & All
	if mask == None {
		return false
	}

	lines := k.Lines()
	if cnt&addresses.KeycntCondAND == addresses.KeycntCondAND {
		return lines&mask == mask
	}
	return lines&mask != None
}
