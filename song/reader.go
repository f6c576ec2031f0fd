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

// Reader is a cursor over the order matrix and the patterns of a song. The
// zero value is not usable. Use NewReader().
type Reader struct {
	song  *Song
	order int
	row   int
}

// NewReader creates a Reader at the first row of the first order.
func NewReader(s *Song) Reader {
	return Reader{song: s}
}

// Position returns the order and row of the cursor.
func (r *Reader) Position() (order int, row int) {
	return r.order, r.row
}

// Cell returns the cell for the channel at the current position. If the order
// matrix refers to a pattern that does not exist then the empty cell is
// returned along with false.
func (r *Reader) Cell(channel int) (Cell, bool) {
	p, ok := r.song.Order(r.order, channel)
	if !ok {
		return EmptyCell, false
	}
	return r.song.Cell(p, r.row)
}

// Advance moves to the next row, moving to the next order at the end of the
// pattern. Returns true if the order list wrapped back to the start.
func (r *Reader) Advance() bool {
	r.row++
	if r.row < PatternRows {
		return false
	}
	r.row = 0
	r.order++
	if r.order < r.song.Header.Orders {
		return false
	}
	r.order = 0
	return true
}

// Jump moves the cursor to the order and row. An out of range order is
// replaced by order zero and an out of range row is replaced by row zero. In
// both cases the function returns false.
func (r *Reader) Jump(order int, row int) bool {
	ok := true
	if order < 0 || order >= r.song.Header.Orders {
		order = 0
		ok = false
	}
	if row < 0 || row >= PatternRows {
		row = 0
		ok = false
	}
	r.order = order
	r.row = row
	return ok
}

// NextOrder returns the order that follows the current order, wrapping at the
// end of the order list.
func (r *Reader) NextOrder() int {
	n := r.order + 1
	if n >= r.song.Header.Orders {
		return 0
	}
	return n
}
