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

// Package irq implements the interrupt controller. The controller routes
// hardware events to the handlers installed by the application.
//
// Delivery of an event is governed by three levels of enable. The master
// enable (IME), the per source enable mask (IE) and, for the three sources
// that are driven by the display timing, the interrupt enable bits of the
// display status register (DISPSTAT). The keypad has its own interrupt enable
// in KEYCNT but that is the responsibility of the keypad package.
//
// Dispatch() is called by the execution substrate at the moment the event
// occurs. An event that cannot be delivered is lost. Nothing is queued and
// nothing is retried.
//
// The controller is not safe for concurrent use. The hardware.Console type
// provides the single mutual exclusion domain.
package irq
