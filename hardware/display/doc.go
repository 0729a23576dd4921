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

// Package display implements the timing of the display controller. Only the
// timing signals are emulated. There is no pixel pipeline.
//
// A frame is 228 scanlines of which the first 160 are visible. The remaining
// 68 scanlines form the vertical blanking period. Each scanline is split into
// two phases, the drawing phase and the horizontal blanking phase, and each
// call to Step() moves the display from one phase to the next.
//
// The VCOUNT register and the status flags of DISPSTAT are updated by the
// display directly. The CPU cannot write to them.
package display
