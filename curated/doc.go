// This file is part of Quartet.
//
// Quartet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Quartet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Quartet.  If not, see <https://www.gnu.org/licenses/>.

// Package curated implements errors that are identified by the pattern used
// to create them, rather than by a sentinel value or a concrete type.
//
// Errors are created with Errorf(), which has the same form as the Errorf()
// function in the fmt package:
//
//	e := curated.Errorf("song: tempo must be non-zero (%d)", t)
//
// The pattern string can later be used to identify the error:
//
//	if curated.Is(e, "song: tempo must be non-zero (%d)") {
//		...
//	}
//
// Packages will typically export the patterns they use so that callers do not
// need to repeat the text.
//
// Has() checks the entire chain for the pattern. A chain is formed when one
// curated error is used as a value for another.
//
// The Error() implementation removes adjacent duplicate prefixes from the
// message. This means that a package can prefix its errors with its name
// without worrying whether the error it is wrapping has done the same.
package curated
