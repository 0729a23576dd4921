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

// Package keypad converts the raw button lines of the console into stable
// press, hold and release states.
//
// The raw lines are sampled only by Update(). The accessor functions return
// the result of the most recent sample and so are consistent with one another
// no matter how often they are called or how the raw lines change in the
// meantime. If Update() is never called then no button is ever reported as
// pressed or released.
//
// The KEYINPUT register is active-low, a cleared bit meaning the button is
// held. The states returned by this package are active-high.
package keypad
