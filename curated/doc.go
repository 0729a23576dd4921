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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the
// same way as fmt.Errorf().
//
// The pattern is retained and so can be used to identify the error later.
// Patterns that callers are expected to test for should be declared as named
// constants next to the function that returns them:
//
//	const ChannelInvalid = "dma: invalid channel (%d)"
//
//	if curated.Is(err, dma.ChannelInvalid) {
//		...
//	}
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain, following curated errors passed as values.
//
// Error() normalises the message by removing adjacent duplicate parts from
// the chain. Parts are separated by the sub-string ": ". This means that
// wrapping an error with the same prefix does not produce a stuttering
// message:
//
//	e := curated.Errorf("sram: %v", curated.Errorf("sram: region overflow"))
//	fmt.Println(e)
//
// prints "sram: region overflow" and not "sram: sram: region overflow".
package curated
