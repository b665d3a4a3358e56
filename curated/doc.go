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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that raise errors
// a caller may want to react to export the pattern as a constant:
//
//	const UnmappedAddress = "memory: unmapped address (%#08x)"
//
//	if curated.Is(err, memory.UnmappedAddress) {
//		...
//	}
//
// The Has() function is similar to Is() but checks the entire chain of
// wrapped errors:
//
//	f := curated.Errorf("psx: %v", err)
//	curated.Has(f, memory.UnmappedAddress) // true
//	curated.Is(f, memory.UnmappedAddress)  // false
//
// The Error() implementation removes adjacent duplicate parts of the message.
// Wrapping an error with the same prefix more than once does no harm:
//
//	a := curated.Errorf("cpu: %v", "bad")
//	b := curated.Errorf("cpu: %v", a)
//	b.Error() // "cpu: bad"
//
// Wrapped values that are errors are also returned by Unwrap() so that
// errors.Is() and errors.As() from the standard library see through a curated
// error.
package curated
