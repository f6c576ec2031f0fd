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

// Package song defines the compiled song format played by the driver package.
//
// A song is a read-only blob made up of a header and seven sections: the
// order matrix, the patterns, the three instrument tables (duty, wave and
// noise), the wave table and the instrument subpatterns. The Song type
// borrows the blob and never changes it. The blob can be supplied by the
// caller with New() or memory mapped from a file with Load().
//
// Parsing checks the framing of the blob only. References between sections,
// such as the pattern numbers in the order matrix or the instrument numbers
// in a pattern cell, are checked by the accessor functions when they are
// used. An out of range reference results in a zero value and a false
// return value. It is up to the caller to decide what to do about it.
//
// The Reader type is a cursor over the order matrix and patterns. The Data
// type describes a song in Go terms and can be encoded to a blob with the
// Encode() function.
package song
