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

package song

// Error patterns returned by New(), Load() and Encode(). Use curated.Is() to
// identify them.
const (
	BadMagic   = "song: bad magic (%q)"
	BadVersion = "song: unsupported version (%d)"
	BadHeader  = "song: bad header: %s"
	Truncated  = "song: truncated (%d bytes, expected %d)"
	Oversized  = "song: trailing data (%d bytes, expected %d)"
	LoadError  = "song: %v"
	BadData    = "song: cannot encode: %s"
)
