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

// Package script runs applications written in Lua on the console. The
// application drives the hardware abstraction layer through a set of global
// tables:
//
//	irq      interrupt controller. init, handler, enable, disable, master
//	key      keypad state. update, held, pressed, released, irq_all, irq_any
//	input    simulated keypad lines. set, lines, get
//	dma      DMA engine. copy, fill, transfer, stop, armed, control
//	sram     save storage. write, read
//	mem      memory bus. read8/16/32, write8/16/32, peek, poke, peekio, pokeio
//	video    display timing. wait, frames, line, frame, vblanks
//	bios     privileged services. reset, cpuset, cpufastset, div, sqrt
//	hal      assert, halt, version, version_string
//
// Misuse of the abstraction layer raises a Lua error, which can be caught
// with pcall(). The exceptions are sram.write() and sram.read(), which return
// a result code, and hal.version(), which returns false and a message.
//
// Interrupt handlers are Lua functions. They are called from inside
// video.wait() and from the other functions that advance the display.
package script
