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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherhal/host/preferences"
	"github.com/jetsetilly/gopherhal/prefs"
	"github.com/jetsetilly/gopherhal/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.FrameLimit.Get().(bool), true)
	test.ExpectEquality(t, p.AutosaveInterval.Get().(int), 60)
	test.ExpectEquality(t, p.SaveFile.Get().(string), "sram")
	test.ExpectEquality(t, p.KeyHold.Get().(int), 6)
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.AutosaveInterval.Set(120))
	test.ExpectSuccess(t, p.SaveFile.Set("game.sav"))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.AutosaveInterval.Get().(int), 120)
	test.ExpectEquality(t, q.SaveFile.Get().(string), "game.sav")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("host.terminal.keyhold::10; host.limiter.active::false")
	defer prefs.PopCommandLineStack()

	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.KeyHold.Get().(int), 10)
	test.ExpectEquality(t, p.FrameLimit.Get().(bool), false)
}
