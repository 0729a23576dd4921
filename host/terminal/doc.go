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

// Package terminal reads key presses from a terminal and turns them into
// keypad buttons. The terminal is put into cbreak mode so that keys are
// received as soon as they are pressed.
//
// Terminals do not report key release events so each key press is held for
// a number of frames by the Holder type.
//
// The default key mapping is:
//
//	cursor keys    Up, Down, Left, Right
//	z              A
//	x              B
//	a              L
//	s              R
//	return         Start
//	backspace      Select
//	q / ctrl-c     quit
package terminal
