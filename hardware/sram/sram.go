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

package sram

import (
	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/hardware/memory/addresses"
)

// Sentinel error patterns.
const (
	TooLarge     = "sram: size of %d bytes is larger than the region"
	BeforeRegion = "sram: address %#08x is before the region"
	PastRegion   = "sram: end address %#08x is past the region"
)

// Result codes returned by Code().
const (
	CodeOK           = 0
	CodeTooLarge     = -1
	CodeBeforeRegion = -2
	CodePastRegion   = -3
)

// Bus is the byte bus to the storage.
type Bus interface {
	Read8(address uint32) uint8
	Write8(address uint32, data uint8)
}

// Region constants.
const (
	Start = addresses.SRAMStart
	Size  = addresses.SRAMSize
)

// SRAM is the access path to the save storage region.
type SRAM struct {
	mem Bus
}

// NewSRAM is the preferred method of initialisation for the SRAM type.
func NewSRAM(mem Bus) *SRAM {
	return &SRAM{mem: mem}
}

// check the transfer of size bytes starting at the address.
func check(address uint32, size int) error {
	if size < 0 || size > Size {
		return curated.Errorf(TooLarge, size)
	}
	if address < Start {
		return curated.Errorf(BeforeRegion, address)
	}
	if uint64(address)+uint64(size) > Start+Size {
		return curated.Errorf(PastRegion, uint64(address)+uint64(size))
	}
	return nil
}

// Write copies len(src) bytes to the region starting at dst.
func (s *SRAM) Write(dst uint32, src []uint8) error {
	if err := check(dst, len(src)); err != nil {
		return err
	}
	for i, b := range src {
		s.mem.Write8(dst+uint32(i), b)
	}
	return nil
}

// Read copies len(dst) bytes from the region starting at src.
func (s *SRAM) Read(dst []uint8, src uint32) error {
	if err := check(src, len(dst)); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = s.mem.Read8(src + uint32(i))
	}
	return nil
}

// Code returns the result code for the error returned by Read() or Write().
// A nil error is CodeOK. Errors that did not come from this package are
// reported as CodeTooLarge.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case curated.Is(err, BeforeRegion):
		return CodeBeforeRegion
	case curated.Is(err, PastRegion):
		return CodePastRegion
	}
	return CodeTooLarge
}
