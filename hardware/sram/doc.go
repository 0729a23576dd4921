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

// Package sram is the access path to the persistent save storage. Every
// access is validated fully before any byte is touched and so an operation
// either transfers all of its bytes or none of them.
//
// The storage is accessed one byte at a time. Wider bus transactions are
// never used because the storage medium only responds correctly to 8bit
// accesses.
//
// Validation happens in a fixed order and the first failure is reported:
//
//	TooLarge       the size is larger than the region
//	BeforeRegion   the start address is before the region
//	PastRegion     the end address is past the end of the region
//
// The Code() function converts errors to the integer codes used by
// application code.
package sram
