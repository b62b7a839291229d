// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are identified by the pattern
// string used to create them. Packages that raise curated errors declare the
// patterns as exported constants so that callers can test for them:
//
//	const InvalidMagic = "sidfile: invalid magic (%s)"
//
//	err := curated.Errorf(InvalidMagic, hdr)
//	if curated.Is(err, InvalidMagic) {
//		...
//	}
//
// Has() is similar to Is() but checks the entire error chain. Wrapping a
// curated error in another curated error is done by passing it as one of the
// placeholder values:
//
//	f := curated.Errorf("c64: %v", err)
//	curated.Has(f, InvalidMagic) // true
//	curated.Is(f, InvalidMagic)  // false
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Wrapping an error with the same prefix at several
// levels of the call stack therefore does not stutter:
//
//	"c64: c64: load address overlaps IO" -> "c64: load address overlaps IO"
//
// Curated errors also implement the multiple error Unwrap() method, so the
// standard errors.Is() and errors.As() functions work on wrapped values.
package curated
