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

package keypad_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/keypad"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/hardware/memory/registers"
	"github.com/jetsetilly/gopherhal/test"
)

func TestEdges(t *testing.T) {
	io := registers.NewRegisters()
	kp := keypad.NewKeypad(io)

	// never sampled
	kp.SetLines(keypad.A)
	test.ExpectEquality(t, kp.Pressed(), keypad.None)
	test.ExpectEquality(t, kp.Held(), keypad.None)

	kp.Update()
	test.ExpectEquality(t, kp.Held(), keypad.A)
	test.ExpectEquality(t, kp.Pressed(), keypad.A)
	test.ExpectEquality(t, kp.Released(), keypad.None)

	// raw lines change but the snapshot is stable
	kp.SetLines(keypad.B)
	test.ExpectEquality(t, kp.Held(), keypad.A)
	test.ExpectEquality(t, kp.Pressed(), keypad.A)
	test.ExpectEquality(t, kp.Lines(), keypad.B)

	kp.Update()
	test.ExpectEquality(t, kp.Held(), keypad.B)
	test.ExpectEquality(t, kp.Pressed(), keypad.B)
	test.ExpectEquality(t, kp.Released(), keypad.A)

	// identical input yields no edges
	kp.Update()
	test.ExpectEquality(t, kp.Held(), keypad.B)
	test.ExpectEquality(t, kp.Pressed(), keypad.None)
	test.ExpectEquality(t, kp.Released(), keypad.None)
}

func TestRandomInput(t *testing.T) {
	io := registers.NewRegisters()
	kp := keypad.NewKeypad(io)
	rnd := rand.New(rand.NewSource(0x2600))

	for i := range 1000 {
		raw := uint16(rnd.Intn(0x10000))
		io.Poke16(addresses.KEYINPUT, raw)
		kp.Update()

		test.ExpectEquality(t, kp.Pressed()&kp.Released(), keypad.None, i)
		test.ExpectEquality(t, uint16(kp.Held()), ^raw&addresses.KeyinputMask, i)

		kp.Update()
		test.ExpectEquality(t, kp.Pressed(), keypad.None, i)
		test.ExpectEquality(t, kp.Released(), keypad.None, i)
	}
}

func TestIRQCondition(t *testing.T) {
	io := registers.NewRegisters()
	kp := keypad.NewKeypad(io)

	kp.IRQEnableAll(keypad.A | keypad.B)
	test.ExpectEquality(t, io.Peek16(addresses.KEYCNT), 0xc003)
	kp.SetLines(keypad.A)
	test.ExpectFailure(t, kp.ConditionMet())
	kp.SetLines(keypad.A | keypad.B | keypad.Start)
	test.ExpectSuccess(t, kp.ConditionMet())

	kp.IRQEnableAny(keypad.Select | keypad.L)
	test.ExpectEquality(t, io.Peek16(addresses.KEYCNT), 0x4204)
	test.ExpectFailure(t, kp.ConditionMet())
	kp.SetLines(keypad.L)
	test.ExpectSuccess(t, kp.ConditionMet())

	kp.IRQDisable()
	test.ExpectEquality(t, io.Peek16(addresses.KEYCNT), 0x0000)
	test.ExpectFailure(t, kp.ConditionMet())

	kp.IRQEnableAny(keypad.None)
	test.ExpectFailure(t, kp.ConditionMet())
}

func TestParse(t *testing.T) {
	b, err := keypad.ParseButton("start")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, keypad.Start)

	b, err = keypad.ParseButtons("A + b+Left")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, keypad.A|keypad.B|keypad.Left)
	test.ExpectEquality(t, b.String(), "A+B+Left")
	test.ExpectSuccess(t, b.Has(keypad.A|keypad.Left))
	test.ExpectFailure(t, b.Has(keypad.R))

	_, err = keypad.ParseButtons("A+Turbo")
	test.ExpectSuccess(t, curated.Has(err, keypad.UnknownButton))
	test.ExpectEquality(t, err.Error(), "keypad: unknown button (Turbo)")

	test.ExpectEquality(t, keypad.None.String(), "none")
}
