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

// Package prefs facilitates the storage of preference values. Preference
// values are typed (Bool, Int, Float, String and Generic) and are collated
// into a Disk instance, which handles saving and loading of the values.
//
// The on-disk format is a simple text file of "key :: value" lines, preceded
// by a warning boilerplate line. Saving a Disk does not remove entries from
// the file that the Disk instance does not know about, so more than one Disk
// instance can share the same file.
//
// Preference values can also be supplied on the command line, as a string of
// "key::value" pairs separated by semi-colons. See PushCommandLineStack().
package prefs
