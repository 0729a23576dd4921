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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, with each mode having its own
// set of flags. For example:
//
//	gopherhal -prefs test.prefs KEYPAD -keyhold 10
//
// The top level flags are parsed first and the KEYPAD mode is selected. The
// KEYPAD mode then parses its own flags from the remaining arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SCRIPT", "KEYPAD", "VERSION")
//	prefsFile := md.AddString("prefs", "", "preferences file")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "KEYPAD":
//		md.NewMode()
//		keyhold := md.AddInt("keyhold", 6, "frames a key is held for")
//		...
//	}
//
// The first sub-mode in the list is the default. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case name.
package modalflag
