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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal and should be used when later parts of a
// test depend on the value being correct. For example, testing that the
// lengths of two slices are equal before iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. A bool is successful if it is true and an error is successful if
// it is nil. The nil type is considered a success because of how errors
// usually work.
//
// The CompareWriter and RingWriter types implement io.Writer and can be used
// to capture output for comparison.
package test
