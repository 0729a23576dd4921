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

// Package host connects a hardware.Console to the services of the host
// substrate. The services run in the frame hook of the console and so run on
// the application goroutine at the start of every VBlank:
//
//   - frame pacing with the limiter package
//   - keypad input queued from other goroutines
//   - autosave of SRAM
//
// The application is started with the Run() function and ends when the
// application function returns or when Quit() is called.
package host
