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

// IO register offsets, relative to IOStart.
const (
	DISPCNT  = 0x000
	DISPSTAT = 0x004
	VCOUNT   = 0x006

	WIN0H  = 0x040
	WIN1H  = 0x042
	WIN0V  = 0x044
	WIN1V  = 0x046
	WININ  = 0x048
	WINOUT = 0x04a
	MOSAIC = 0x04c

	BLDCNT   = 0x050
	BLDALPHA = 0x052
	BLDY     = 0x054

	SOUNDCNT_L = 0x080
	SOUNDCNT_H = 0x082
	SOUNDCNT_X = 0x084
	SOUNDBIAS  = 0x088

	FIFO_A = 0x0a0
	FIFO_B = 0x0a4

	DMA0SAD   = 0x0b0
	DMA0DAD   = 0x0b4
	DMA0CNT_L = 0x0b8
	DMA0CNT_H = 0x0ba

	KEYINPUT = 0x130
	KEYCNT   = 0x132

	IE      = 0x200
	IF      = 0x202
	WAITCNT = 0x204
	IME     = 0x208
)

// DMAStride is the distance between the register blocks of consecutive DMA
// channels.
const DMAStride = 0x0c

// DMA register offsets for the numbered channel.
func DMASAD(channel int) uint32  { return DMA0SAD + uint32(channel)*DMAStride }
func DMADAD(channel int) uint32  { return DMA0DAD + uint32(channel)*DMAStride }
func DMACNTL(channel int) uint32 { return DMA0CNT_L + uint32(channel)*DMAStride }
func DMACNTH(channel int) uint32 { return DMA0CNT_H + uint32(channel)*DMAStride }

// DISPSTAT bits.
const (
	DispstatVBlank       = 0x0001
	DispstatHBlank       = 0x0002
	DispstatVCount       = 0x0004
	DispstatVBlankIRQ    = 0x0008
	DispstatHBlankIRQ    = 0x0010
	DispstatVCountIRQ    = 0x0020
	DispstatStatusMask   = 0x0007
	DispstatVCountShift  = 8
	DispstatVCountTarget = 0xff00
)

// KEYCNT bits.
const (
	KeycntMask      = 0x03ff
	KeycntIRQEnable = 0x4000
	KeycntCondAND   = 0x8000
)

// KEYINPUT has one bit per button. Unused bits always read as 1.
const KeyinputMask = 0x03ff

// SOUNDCNT_X master enable.
const SoundcntXMasterEnable = 0x0080

// IME master enable.
const IMEEnable = 0x0001

// Symbols indexes the canonical name of each register by offset.
var Symbols = map[uint32]string{
	DISPCNT:    "DISPCNT",
	DISPSTAT:   "DISPSTAT",
	VCOUNT:     "VCOUNT",
	WIN0H:      "WIN0H",
	WIN1H:      "WIN1H",
	WIN0V:      "WIN0V",
	WIN1V:      "WIN1V",
	WININ:      "WININ",
	WINOUT:     "WINOUT",
	MOSAIC:     "MOSAIC",
	BLDCNT:     "BLDCNT",
	BLDALPHA:   "BLDALPHA",
	BLDY:       "BLDY",
	SOUNDCNT_L: "SOUNDCNT_L",
	SOUNDCNT_H: "SOUNDCNT_H",
	SOUNDCNT_X: "SOUNDCNT_X",
	SOUNDBIAS:  "SOUNDBIAS",
	FIFO_A:     "FIFO_A",
	FIFO_B:     "FIFO_B",
	0x0b0:      "DMA0SAD",
	0x0b4:      "DMA0DAD",
	0x0b8:      "DMA0CNT_L",
	0x0ba:      "DMA0CNT_H",
	0x0bc:      "DMA1SAD",
	0x0c0:      "DMA1DAD",
	0x0c4:      "DMA1CNT_L",
	0x0c6:      "DMA1CNT_H",
	0x0c8:      "DMA2SAD",
	0x0cc:      "DMA2DAD",
	0x0d0:      "DMA2CNT_L",
	0x0d2:      "DMA2CNT_H",
	0x0d4:      "DMA3SAD",
	0x0d8:      "DMA3DAD",
	0x0dc:      "DMA3CNT_L",
	0x0de:      "DMA3CNT_H",
	KEYINPUT:   "KEYINPUT",
	KEYCNT:     "KEYCNT",
	IE:         "IE",
	IF:         "IF",
	WAITCNT:    "WAITCNT",
	IME:        "IME",
}
