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

import "fmt"

// Note is a pitch in semitones. Note zero is C-3 and the highest note is B-8.
type Note uint8

// LastNote is the highest playable note (B-8).
const LastNote Note = 71

// NoNote indicates that a cell does not trigger a note.
const NoNote Note = 90

// NumNotes is the number of playable notes.
const NumNotes = int(LastNote) + 1

var noteNames = [...]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// Valid returns true if the note is playable.
func (n Note) Valid() bool {
	return n <= LastNote
}

// Offset returns the note shifted by a number of semitones. The result is
// clamped to the range of playable notes.
func (n Note) Offset(semitones int) Note {
	v := int(n) + semitones
	if v < 0 {
		return 0
	}
	if v > int(LastNote) {
		return LastNote
	}
	return Note(v)
}

// String returns the note in tracker notation. For example, "C-4" or "F#5".
func (n Note) String() string {
	if n == NoNote {
		return "---"
	}
	if !n.Valid() {
		return "???"
	}
	return fmt.Sprintf("%s%d", noteNames[n%12], int(n/12)+3)
}

// ParseNote is the inverse of Note.String(). Returns false if the string
// cannot be parsed.
func ParseNote(s string) (Note, bool) {
	if s == "---" {
		return NoNote, true
	}
	if len(s) != 3 {
		return NoNote, false
	}
	for i, nm := range noteNames {
		if nm == s[:2] {
			oct := int(s[2]) - '0'
			if oct < 3 || oct > 8 {
				return NoNote, false
			}
			return Note((oct-3)*12 + i), true
		}
	}
	return NoNote, false
}
