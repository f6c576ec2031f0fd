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

import (
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/song"
)

type noise struct {
	common
	ins song.NoiseInstrument
}

func (n *noise) id() ChannelID {
	return Noise
}

func (n *noise) instrument(s *song.Song, num int) bool {
	ins, ok := s.NoiseInstrument(num)
	if !ok {
		return false
	}
	n.ins = ins
	return true
}

func (n *noise) defaults(s *song.Song) int {
	if n.v.instrument == 0 {
		n.v.volume = 0xf0
		n.v.timbre = 0x00
		return 0
	}
	n.v.volume = n.ins.Envelope
	n.v.timbre = n.ins.Flags & song.FlagNoise7Bit
	return int(n.ins.Subpattern)
}

// the noise channel has no period. the note selects the NR43 value and
// portamento and vibrato have no effect
func (n *noise) registers(out output) registers {
	var r registers
	r[1] = n.ins.Length()
	if !out.cut {
		r[2] = out.volume
	}
	r[3] = NoisePoly(out.note)
	if out.timbre&song.FlagNoise7Bit != 0 {
		r[3] |= 0x08
	}
	if n.ins.Flags&song.FlagLengthEnable != 0 {
		r[4] = apu.LengthEnable
	}
	return r
}

func (n *noise) silence() []regWrite {
	return []regWrite{{apu.NR42, 0x00}}
}

func (n *noise) volumeRetrigger() bool {
	return true
}
