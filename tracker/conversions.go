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

package tracker

import (
	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/song"
)

// MusicalNote is the name of the note (C-4, F#5, etc.) played by a channel.
type MusicalNote string

// NoMusicalNote is used when the channel is not playing a recognisable note.
const NoMusicalNote = MusicalNote("-")

// LookupMusicalNote converts the register values for a channel into a musical
// note. The registers are in the slot order of apu.ChannelRegisters.
func LookupMusicalNote(channel int, regs [5]uint8) MusicalNote {
	switch channel {
	case 0, 1, 2:
		period := int(regs[3]) | int(regs[4]&0x07)<<8
		n, ok := driver.PeriodNote(period)
		if !ok {
			return NoMusicalNote
		}
		return MusicalNote(n.String())

	case 3:
		// the 7-bit flag is not part of the lookup
		poly := regs[3] &^ 0x08
		for n := song.Note(0); n <= song.LastNote; n++ {
			if driver.NoisePoly(n) == poly {
				return MusicalNote(n.String())
			}
		}
	}
	return NoMusicalNote
}

var dutyNames = [4]string{"12.5%", "25%", "50%", "75%"}

// LookupTimbre converts the register values for a channel into a short
// description of the sound.
func LookupTimbre(channel int, regs [5]uint8) string {
	switch channel {
	case 0, 1:
		return dutyNames[regs[1]>>6]
	case 2:
		switch (regs[2] >> 5) & 0x03 {
		case 0:
			return "wave 0%"
		case 1:
			return "wave 100%"
		case 2:
			return "wave 50%"
		}
		return "wave 25%"
	case 3:
		if regs[3]&0x08 != 0 {
			return "7-bit"
		}
		return "15-bit"
	}
	return ""
}
