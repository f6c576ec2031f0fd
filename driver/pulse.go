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

type pulse struct {
	common
	ch  ChannelID
	ins song.DutyInstrument
}

func (p *pulse) id() ChannelID {
	return p.ch
}

func (p *pulse) instrument(s *song.Song, n int) bool {
	ins, ok := s.DutyInstrument(n)
	if !ok {
		return false
	}
	p.ins = ins
	return true
}

func (p *pulse) defaults(s *song.Song) int {
	if p.v.instrument == 0 {
		p.v.volume = 0xf0
		p.v.timbre = 0x80
		return 0
	}
	p.v.volume = p.ins.Envelope
	p.v.timbre = p.ins.DutyLength & 0xc0
	return int(p.ins.Subpattern)
}

func (p *pulse) registers(out output) registers {
	var r registers
	if p.ch == Pulse1 {
		r[0] = p.ins.Sweep
	}
	r[1] = out.timbre&0xc0 | p.ins.DutyLength&0x3f
	if !out.cut {
		r[2] = out.volume
	}
	r[3] = uint8(out.period)
	r[4] = uint8(out.period>>8) & 0x07
	if p.ins.Flags&song.FlagLengthEnable != 0 {
		r[4] |= apu.LengthEnable
	}
	return r
}

func (p *pulse) silence() []regWrite {
	return []regWrite{{apu.ChannelRegisters[p.ch][2], 0x00}}
}

func (p *pulse) volumeRetrigger() bool {
	return true
}
