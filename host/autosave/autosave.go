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

package autosave

import (
	"bytes"
	"os"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/logger"
)

// Sentinel error patterns.
const (
	WrongSize = "autosave: file is of incorrect length. %d should be %d"
)

// Autosave keeps the save file up to date with the live SRAM region.
type Autosave struct {
	path string

	// the live region. amended by the console
	Data []uint8

	// the data as it is on disk. Data is mutable and we need a way of
	// comparing what's on disk with what's in memory
	DiskData []uint8

	// the number of frames between checks
	interval int
	ct       int
}

// NewAutosave is the preferred method of initialisation for the Autosave
// type. The data argument is the live SRAM region. Any existing file is read
// into the region.
func NewAutosave(path string, data []uint8, interval int) (*Autosave, error) {
	as := &Autosave{
		path:     path,
		Data:     data,
		DiskData: make([]uint8, len(data)),
		interval: interval,
	}
	copy(as.DiskData, as.Data)

	if err := as.Read(); err != nil {
		return nil, err
	}

	return as, nil
}

// Read the save file into the live region. A missing file is not an error
// and the region is unchanged.
func (as *Autosave) Read() error {
	d, err := os.ReadFile(as.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Logf(logger.Allow, "autosave", "no save file at %s", as.path)
			return nil
		}
		return curated.Errorf("autosave: %v", err)
	}

	if len(d) != len(as.Data) {
		return curated.Errorf(WrongSize, len(d), len(as.Data))
	}

	copy(as.Data, d)
	copy(as.DiskData, d)

	logger.Logf(logger.Allow, "autosave", "save file loaded from %s", as.path)

	return nil
}

// Write the live region to the save file.
func (as *Autosave) Write() (rerr error) {
	f, err := os.Create(as.path)
	if err != nil {
		return curated.Errorf("autosave: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("autosave: %v", err)
		}
	}()

	n, err := f.Write(as.Data)
	if err != nil {
		return curated.Errorf("autosave: %v", err)
	}
	if n != len(as.Data) {
		return curated.Errorf(WrongSize, n, len(as.Data))
	}

	// copy of data that's just been written to disk
	copy(as.DiskData, as.Data)

	logger.Logf(logger.Allow, "autosave", "save file written to %s", as.path)

	return nil
}

// IsSaved returns true if the live region is the same as the save file.
func (as *Autosave) IsSaved() bool {
	return bytes.Equal(as.Data, as.DiskData)
}

// Tick should be called once per frame. The save file is written if the
// interval has elapsed and the live region has changed. Errors are logged and
// the file will be tried again on the next interval.
func (as *Autosave) Tick() {
	if as.interval <= 0 {
		return
	}
	as.ct++
	if as.ct < as.interval {
		return
	}
	as.ct = 0

	if !as.IsSaved() {
		if err := as.Write(); err != nil {
			logger.Log(logger.Allow, "autosave", err)
		}
	}
}

// Flush writes the save file if the live region has changed.
func (as *Autosave) Flush() error {
	if as.IsSaved() {
		return nil
	}
	return as.Write()
}
