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

package addresses

// Memory regions. The End value is the last address in the region (not the
// mirrored range).
const (
	BIOSStart = 0x00000000
	BIOSEnd   = 0x00003fff
	BIOSSize  = BIOSEnd - BIOSStart + 1

	EWRAMStart = 0x02000000
	EWRAMEnd   = 0x0203ffff
	EWRAMSize  = EWRAMEnd - EWRAMStart + 1

	IWRAMStart = 0x03000000
	IWRAMEnd   = 0x03007fff
	IWRAMSize  = IWRAMEnd - IWRAMStart + 1

	IOStart = 0x04000000
	IOEnd   = 0x040003ff
	IOSize  = IOEnd - IOStart + 1

	PaletteStart = 0x05000000
	PaletteEnd   = 0x050003ff
	PaletteSize  = PaletteEnd - PaletteStart + 1

	VRAMStart = 0x06000000
	VRAMEnd   = 0x06017fff
	VRAMSize  = VRAMEnd - VRAMStart + 1

	OAMStart = 0x07000000
	OAMEnd   = 0x070003ff
	OAMSize  = OAMEnd - OAMStart + 1

	// the three cartridge ROM wait-state areas are mirrors of one another.
	// this is the read-only mass storage range that only DMA channel 3 can
	// source from
	ROMStart = 0x08000000
	ROMEnd   = 0x0dffffff
	ROMSize  = 0x02000000

	SRAMStart = 0x0e000000
	SRAMEnd   = 0x0e00ffff
	SRAMSize  = SRAMEnd - SRAMStart + 1
)

// InROM returns true if the address is in the cartridge ROM range.
func InROM(address uint32) bool {
	return address >= ROMStart && address <= ROMEnd
}

// InSRAM returns true if the address is in the SRAM region.
func InSRAM(address uint32) bool {
	return address >= SRAMStart && address <= SRAMEnd
}
