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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
	"github.com/jetsetilly/gopherhal/test"
)

func TestDMAOffsets(t *testing.T) {
	for ch := range 4 {
		sad := addresses.DMASAD(ch)
		test.ExpectEquality(t, addresses.DMADAD(ch), sad+4)
		test.ExpectEquality(t, addresses.DMACNTL(ch), sad+8)
		test.ExpectEquality(t, addresses.DMACNTH(ch), sad+10)
	}
	test.ExpectEquality(t, addresses.Symbols[addresses.DMACNTH(3)], "DMA3CNT_H")
	test.ExpectEquality(t, addresses.Symbols[addresses.DMASAD(1)], "DMA1SAD")
}

func TestRegions(t *testing.T) {
	test.ExpectSuccess(t, addresses.InROM(addresses.ROMStart))
	test.ExpectSuccess(t, addresses.InROM(addresses.ROMEnd))
	test.ExpectFailure(t, addresses.InROM(addresses.ROMStart-1))
	test.ExpectFailure(t, addresses.InROM(addresses.SRAMStart))
	test.ExpectSuccess(t, addresses.InSRAM(addresses.SRAMStart))
	test.ExpectEquality(t, addresses.SRAMSize, 0x10000)
}
