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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherhal/resources"
	"github.com/jetsetilly/gopherhal/test"
)

func TestJoinPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("GOPHERHAL_RESOURCES", base)

	p, err := resources.JoinPath("saves", "game.sram")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(base, "saves", "game.sram"))

	// intermediate directory has been created but not the file
	fi, err := os.Stat(filepath.Join(base, "saves"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
