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

package apu

type wave struct {
	enabled bool
	dac     bool

	length length
	level  uint8

	period uint16
	pos    uint8
	timer  float64

	ram *[16]uint8
}

func (w *wave) write(slot int, v uint8) {
	switch slot {
	case 0:
		w.dac = v&0x80 != 0
		if !w.dac {
			w.enabled = false
		}
	case 1:
		w.length.load(int(v))
	case 2:
		w.level = (v >> 5) & 0x03
	case 3:
		w.period = w.period&0x0700 | uint16(v)
	case 4:
		w.period = w.period&0x00ff | uint16(v&0x07)<<8
		w.length.enabled = v&LengthEnable != 0
		if v&Trigger != 0 {
			w.enabled = w.dac
			w.length.trigger()
			w.pos = 0
			w.timer = 0
		}
	}
}

func (w *wave) advance(cycles float64) {
	if !w.enabled {
		return
	}
	w.timer -= cycles
	step := float64((2048 - int(w.period)) * 2)
	for w.timer <= 0 {
		w.timer += step
		w.pos = (w.pos + 1) & 0x1f
	}
}

// output level is a right shift of the 4-bit sample.
var waveShift = [4]uint8{4, 0, 1, 2}

func (w *wave) sample() float32 {
	if !w.enabled || !w.dac || w.level == 0 {
		return 0
	}
	b := w.ram[w.pos>>1]
	if w.pos&1 == 0 {
		b >>= 4
	}
	b = (b & 0x0f) >> waveShift[w.level]
	return float32(b)/7.5 - 1
}
