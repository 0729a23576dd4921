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

package version

import (
	"fmt"
	"runtime/debug"

	"github.com/jetsetilly/gopherhal/curated"
)

// The name to use when referring to the application
const ApplicationName = "GopherHAL"

// The library version triple. Applications state the version they were built
// against and check it with CheckCompatibility().
const (
	Major = 0
	Minor = 3
	Patch = 0
)

// Patterns returned by CheckCompatibility().
const (
	MajorMismatch   = "version: major version mismatch (library %d, requested %d)"
	MinorNotPresent = "version: minor version too new (library %d.%d, requested %d.%d)"
)

// CheckCompatibility checks that the library is able to run an application
// built against the specified version. The major version must match exactly
// and the requested minor version must not be greater than the library's
// minor version. The patch level is not considered.
func CheckCompatibility(major, minor, patch int) error {
	if major != Major {
		return curated.Errorf(MajorMismatch, Major, major)
	}
	if minor > Minor {
		return curated.Errorf(MinorNotPresent, Major, Minor, major, minor)
	}
	return nil
}

// Triple returns the library version as a string.
func Triple() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// if number is empty then the project was probably not built using the makefile
var number string

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// version contains the current version number of the project
//
// If the version string is "unreleased" then it means that the project has
// been manually built (ie. not with the makefile)
//
// If the version string is "local" then there is no version number and no
// vcs information. This can happen when compiling/running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
