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

package driver

import "github.com/jetsetilly/quartet/song"

// MaxPeriod is the largest value that can be written to the period registers.
const MaxPeriod = 2047

// periods for notes C-3 to B-8. period = 2048 - 131072 / frequency
var periodTable = [song.NumNotes]uint16{
	44, 157, 263, 363, 457, 547, 631, 711, 786, 856, 923, 986,
	1046, 1102, 1155, 1205, 1253, 1297, 1339, 1379, 1417, 1452, 1486, 1517,
	1547, 1575, 1602, 1627, 1650, 1673, 1694, 1714, 1732, 1750, 1767, 1783,
	1798, 1812, 1825, 1837, 1849, 1860, 1871, 1881, 1890, 1899, 1907, 1915,
	1923, 1930, 1936, 1943, 1949, 1954, 1959, 1964, 1969, 1974, 1978, 1982,
	1985, 1989, 1992, 1995, 1998, 2001, 2004, 2006, 2009, 2011, 2013, 2015,
}

// NR43 values for notes played on the noise channel. low notes use the
// longest clock shift
var noiseTable = [song.NumNotes]uint8{
	0xd7, 0xd6, 0xd5, 0xd4, 0xc7, 0xc6, 0xc5, 0xc4, 0xc4, 0xb6, 0xb5, 0xb5,
	0xb4, 0xa7, 0xa6, 0xa5, 0xa4, 0x97, 0x96, 0x95, 0x94, 0x87, 0x86, 0x85,
	0x84, 0x77, 0x76, 0x75, 0x75, 0x74, 0x67, 0x66, 0x65, 0x64, 0x57, 0x56,
	0x55, 0x54, 0x47, 0x46, 0x45, 0x44, 0x37, 0x36, 0x35, 0x34, 0x34, 0x26,
	0x25, 0x25, 0x24, 0x17, 0x16, 0x15, 0x14, 0x07, 0x06, 0x05, 0x04, 0x04,
	0x03, 0x03, 0x02, 0x02, 0x02, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00,
}

// NotePeriod returns the period register value for the note. Notes out of
// range are clamped.
func NotePeriod(n song.Note) int {
	if !n.Valid() {
		n = song.LastNote
	}
	return int(periodTable[n])
}

// NoisePoly returns the NR43 value for a note played on the noise channel.
func NoisePoly(n song.Note) uint8 {
	if !n.Valid() {
		n = song.LastNote
	}
	return noiseTable[n]
}

// PeriodNote returns the note closest to the period. Returns false if the
// period is more than half way to the neighbouring note.
func PeriodNote(period int) (song.Note, bool) {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	best := 0
	for i, p := range periodTable {
		if abs(int(p)-period) < abs(int(periodTable[best])-period) {
			best = i
		}
	}

	var gap int
	if best > 0 {
		gap = int(periodTable[best] - periodTable[best-1])
	}
	if best < len(periodTable)-1 {
		gap = max(gap, int(periodTable[best+1]-periodTable[best]))
	}

	if abs(int(periodTable[best])-period)*2 > gap {
		return song.NoNote, false
	}
	return song.Note(best), true
}

func clampPeriod(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPeriod {
		return MaxPeriod
	}
	return p
}
