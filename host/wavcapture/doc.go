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

// Package wavcapture records the bytes written to the sound FIFOs and writes
// them to disk as WAV files. Each FIFO is written to its own mono file with
// eight bit samples.
//
// Sample data is buffered in memory in its entirety and written to disk when
// Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavcapture
