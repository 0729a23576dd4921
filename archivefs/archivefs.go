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

// Package archivefs opens ROM and BIOS images that may be stored inside a zip
// archive. A path can name a plain file, an archive or a file inside an
// archive:
//
//	game.gba
//	game.zip
//	game.zip/game.gba
//
// When the path names an archive the first file with a recognised image
// extension is used.
package archivefs

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherhal/curated"
)

// Sentinel error patterns.
const (
	NoImage  = "archivefs: no image file in %s"
	NotFound = "archivefs: %s not found in %s"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// ImageExtensions is the list of file extensions recognised as images when
// searching an archive.
var ImageExtensions = [...]string{".GBA", ".AGB", ".BIN", ".ROM"}

func hasExt(name string, exts []string) bool {
	e := strings.ToUpper(filepath.Ext(name))
	for _, x := range exts {
		if e == x {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	if hasExt(s, ArchiveExtensions[:]) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}

// split the filename into the path of the archive and the path inside the
// archive. the inner path is empty if the filename names an archive. the
// archive path is empty if the filename does not involve an archive.
func split(filename string) (string, string) {
	filename = filepath.Clean(filename)
	lst := strings.Split(filename, string(filepath.Separator))
	for i := range lst {
		if hasExt(lst[i], ArchiveExtensions[:]) {
			archive := strings.Join(lst[:i+1], string(filepath.Separator))
			if archive == "" {
				archive = string(filepath.Separator)
			}
			if fi, err := os.Stat(archive); err == nil && !fi.IsDir() {
				return archive, path.Join(lst[i+1:]...)
			}
		}
	}
	return "", ""
}

// ReadFile returns the contents of the named file.
func ReadFile(filename string) ([]uint8, error) {
	archive, inner := split(filename)
	if archive == "" {
		d, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		return d, nil
	}

	zf, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer zf.Close()

	var f *zip.File
	for _, zfi := range zf.File {
		if zfi.FileInfo().IsDir() {
			continue
		}
		if inner == "" {
			if hasExt(zfi.Name, ImageExtensions[:]) {
				f = zfi
				break // for loop
			}
		} else if path.Clean(zfi.Name) == inner {
			f = zfi
			break // for loop
		}
	}

	if f == nil {
		if inner == "" {
			return nil, curated.Errorf(NoImage, archive)
		}
		return nil, curated.Errorf(NotFound, inner, archive)
	}

	r, err := f.Open()
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer r.Close()

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	return d, nil
}
