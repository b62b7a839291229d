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

// Package test contains helper functions to remove common boilerplate and make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. The nil type is considered a success
// because of how errors usually work (nil to indicate no error).
//
// The Equate() function compares like-typed values for equality. Some types
// can be compared against an int literal for convenience. ExpectEquality() is
// the generic form for types that are comparable.
//
// The Demand*() functions are the same as their Expect*() counterparts except
// that failure is fatal for the test. Use them when the value is needed by
// later stages of the test.
//
// CompareWriter implements the io.Writer interface and should be used to
// capture output. The Compare() function can then be used to test for
// equality.
package test
