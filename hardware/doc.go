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

// Package hardware is the base package for the console hardware. The Console
// type is the single context object that owns every component: the register
// file, the memory bus, the interrupt controller, the keypad, the DMA engine,
// the save storage path, the display timing and the privileged services.
//
// The Console is the execution substrate for the host process. Application
// code runs on a single goroutine and only suspends in WaitVBlank(). While
// suspended the substrate advances the display timing with Step() and raises
// the interrupts and DMA timing edges at the moment they occur.
//
// None of the components are safe for concurrent use and neither is the
// Console. Host services that run on other goroutines must pass their work to
// the application goroutine, usually through the frame hook. Shutdown() is
// the only function that can be called from another goroutine.
package hardware
