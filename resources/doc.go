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

// Package resources contains functions to prepare paths for resources
// stored on the host filesystem, such as the save file and the
// preferences file.
//
// Resources are stored in a base directory. If a directory named
// ".gopherhal" exists in the current working directory then that is used
// (the portable path). Otherwise the base is a "gopherhal" directory in the
// user's configuration directory. The GOPHERHAL_RESOURCES environment
// variable overrides both.
package resources
