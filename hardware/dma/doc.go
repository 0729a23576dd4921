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

// Package dma implements the four channel DMA transfer engine.
//
// A channel is armed by a write to its DMAxCNT_H register that sets the
// enable bit. The register hook installed by NewDMA() is the only way a
// channel can be armed and so a write from the CPU side of the register file
// has the same effect as a call to Transfer(). Arming a channel that is
// already armed reprograms it.
//
// Transfers with immediate timing complete before the register write
// returns. Other timings are deferred until the execution substrate signals
// the matching edge with VBlank(), HBlank() or SoundFIFO(). HBlank timing is
// never triggered during the vertical blanking period.
//
// Channels 0 to 2 cannot address the cartridge ROM. A transfer that would
// source from ROM on those channels is rejected before any data is moved.
//
// The Copy() and Fill() functions validate the alignment of their addresses
// and the length of the transfer. Transfer() is a lower level function and
// follows the hardware, which silently drops the low bits of misaligned
// addresses.
package dma
