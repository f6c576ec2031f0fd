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

// ResetWaveID is the value of LoadedWave() when wave RAM must be reloaded on
// the next note trigger of the wave channel.
const ResetWaveID = 100

type wave struct {
	common
	ins song.WaveInstrument
}

func (w *wave) id() ChannelID {
	return Wave
}

func (w *wave) instrument(s *song.Song, n int) bool {
	ins, ok := s.WaveInstrument(n)
	if !ok {
		return false
	}
	w.ins = ins
	return true
}

func (w *wave) defaults(s *song.Song) int {
	if w.v.instrument == 0 {
		w.v.volume = 0xf0
		w.v.timbre = 0
		return 0
	}
	w.v.volume = levelVolume(w.ins.OutputLevel)
	w.v.timbre = w.ins.Wave
	return int(w.ins.Subpattern)
}

// NR32 output level to volume nibble (NRx2 format) and back again.
func levelVolume(level uint8) uint8 {
	switch (level >> 5) & 0x03 {
	case 1:
		return 0xf0
	case 2:
		return 0x80
	case 3:
		return 0x40
	}
	return 0x00
}

func volumeLevel(volume uint8) uint8 {
	v := volume >> 4
	switch {
	case v == 0:
		return 0x00
	case v <= 4:
		return 0x60
	case v <= 8:
		return 0x40
	}
	return 0x20
}

func (w *wave) registers(out output) registers {
	var r registers
	if !out.cut {
		r[0] = 0x80
	}
	r[1] = w.ins.Length
	r[2] = volumeLevel(out.volume)
	r[3] = uint8(out.period)
	r[4] = uint8(out.period>>8) & 0x07
	if w.ins.Flags&song.FlagLengthEnable != 0 {
		r[4] |= apu.LengthEnable
	}
	return r
}

func (w *wave) silence() []regWrite {
	return []regWrite{{apu.NR30, 0x00}}
}

// the output level of the wave channel changes without a retrigger
func (w *wave) volumeRetrigger() bool {
	return false
}
