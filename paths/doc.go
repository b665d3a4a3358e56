// This file is part of GopherPSX.
//
// GopherPSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPSX.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths for the resources used by
// GopherPSX, such as the preferences file and profiling output.
//
// For development builds the resource directory is ".gopherpsx" in the current
// working directory. For release builds (built with the "release" tag) the
// directory is "gopherpsx" in the user's configuration directory, as reported
// by os.UserConfigDir().
//
// Directories are created as required by ResourcePath().
package paths
