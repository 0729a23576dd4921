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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopherhal/prefs"
	"github.com/jetsetilly/gopherhal/resources"
)

// Preferences for the host substrate.
type Preferences struct {
	dsk *prefs.Disk

	// whether the frame limiter is active and the rate it limits to. a rate
	// of zero or less means the refresh rate of the console
	FrameLimit prefs.Bool
	FPS        prefs.Float

	// the number of frames between comparisons of SRAM with the save file.
	// a value of zero disables autosave except on exit
	AutosaveInterval prefs.Int

	// the name of the save file in the resources directory
	SaveFile prefs.String

	// the number of frames a key on the terminal is held for. terminals do
	// not report key release events
	KeyHold prefs.Int

	// the sample rate of the sound FIFOs
	FIFORate prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("limit=%s fps=%s autosave=%s save=%s keyhold=%s fifo=%s",
		&p.FrameLimit, &p.FPS, &p.AutosaveInterval, &p.SaveFile, &p.KeyHold, &p.FIFORate)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from disk if the preferences file
// exists.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromPath is like NewPreferences() except that the path to the
// preferences file is given.
func NewPreferencesFromPath(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("host.limiter.active", &p.FrameLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("host.limiter.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("host.autosave.interval", &p.AutosaveInterval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("host.autosave.file", &p.SaveFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("host.terminal.keyhold", &p.KeyHold)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("host.sound.fiforate", &p.FIFORate)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.FrameLimit.Set(true)
	p.FPS.Set(0.0)
	p.AutosaveInterval.Set(60)
	p.SaveFile.Set("sram")
	p.KeyHold.Set(6)
	p.FIFORate.Set(0)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
