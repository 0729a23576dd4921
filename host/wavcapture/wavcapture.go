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

package wavcapture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherhal/curated"
	"github.com/jetsetilly/gopherhal/logger"
	"github.com/youpy/go-wav"
)

// the number of sound FIFOs
const numFIFO = 2

// Capture implements the registers.FIFOSink interface.
type Capture struct {
	crit sync.Mutex

	filename   string
	sampleRate int
	buffer     [numFIFO][]wav.Sample
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The filename is used as a template. The FIFO name is inserted before the
// file extension, so "sound.wav" becomes "sound_A.wav" and "sound_B.wav".
func NewCapture(filename string, sampleRate int) (*Capture, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavcapture: %v", fmt.Sprintf("sample rate must be positive (%d)", sampleRate))
	}
	return &Capture{
		filename:   filename,
		sampleRate: sampleRate,
	}, nil
}

// FIFOWrite implements the registers.FIFOSink interface. Sound FIFO data is
// signed.
func (c *Capture) FIFOWrite(fifo int, data uint8) {
	if fifo < 0 || fifo >= numFIFO {
		return
	}
	c.crit.Lock()
	defer c.crit.Unlock()

	// WAV files with eight bit samples are unsigned
	w := wav.Sample{}
	w.Values[0] = int(int8(data)) + 128
	c.buffer[fifo] = append(c.buffer[fifo], w)
}

// Samples returns the number of samples captured for the FIFO.
func (c *Capture) Samples(fifo int) int {
	if fifo < 0 || fifo >= numFIFO {
		return 0
	}
	c.crit.Lock()
	defer c.crit.Unlock()
	return len(c.buffer[fifo])
}

// Filename returns the name of the file that the FIFO is written to.
func (c *Capture) Filename(fifo int) string {
	ext := filepath.Ext(c.filename)
	base := strings.TrimSuffix(c.filename, ext)
	if ext == "" {
		ext = ".wav"
	}
	return fmt.Sprintf("%s_%c%s", base, 'A'+fifo, ext)
}

// Close writes the captured data to disk. A FIFO that has received no data is
// not written.
func (c *Capture) Close() error {
	c.crit.Lock()
	defer c.crit.Unlock()

	for i := range numFIFO {
		if len(c.buffer[i]) == 0 {
			continue
		}
		if err := c.write(i); err != nil {
			return err
		}
	}

	return nil
}

func (c *Capture) write(fifo int) (rerr error) {
	fn := c.Filename(fifo)

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("wavcapture: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavcapture: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(c.buffer[fifo])), 1, uint32(c.sampleRate), 8)
	if enc == nil {
		return curated.Errorf("wavcapture: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavcapture", "writing %d samples to %s", len(c.buffer[fifo]), fn)

	if err := enc.WriteSamples(c.buffer[fifo]); err != nil {
		return curated.Errorf("wavcapture: %v", err)
	}

	return nil
}
