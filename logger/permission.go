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

package logger

// Permission is implemented by anything that makes log requests. A log entry
// is only added if AllowLogging() returns true.
type Permission interface {
	AllowLogging() bool
}

// Allow is a Permission that always allows logging.
var Allow Permission = always(true)

type always bool

// AllowLogging implements the Permission interface.
func (a always) AllowLogging() bool {
	return bool(a)
}
