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

package version_test

import (
	"testing"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/test"
	"github.com/jetsetilly/gopherhal/version"
)

func TestCompatibility(t *testing.T) {
	test.ExpectSuccess(t, version.CheckCompatibility(version.Major, version.Minor, version.Patch))

	// patch is not considered
	test.ExpectSuccess(t, version.CheckCompatibility(version.Major, version.Minor, version.Patch+100))

	// older minor versions are supported
	if version.Minor > 0 {
		test.ExpectSuccess(t, version.CheckCompatibility(version.Major, version.Minor-1, 0))
	}

	err := version.CheckCompatibility(version.Major, version.Minor+1, 0)
	test.ExpectSuccess(t, curated.Is(err, version.MinorNotPresent))

	err = version.CheckCompatibility(version.Major+1, version.Minor, 0)
	test.ExpectSuccess(t, curated.Is(err, version.MajorMismatch))
}

func TestTriple(t *testing.T) {
	test.ExpectEquality(t, version.Triple(), "0.3.0")
}
