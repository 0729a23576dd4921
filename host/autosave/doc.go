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

// Package autosave keeps a file on disk in step with the save storage of the
// console. On real hardware every write to SRAM is durable. On the host
// substrate the file is written when the contents of SRAM have changed since
// the last time the file was written.
//
// Tick() should be called once per frame. Changes are checked for every
// interval frames. Flush() should be called before the program ends.
package autosave
