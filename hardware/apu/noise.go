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

var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

type noise struct {
	enabled bool
	dac     bool

	length   length
	envelope envelope

	shift   uint8
	narrow  bool
	divisor uint8
	lfsr    uint16
	timer   float64
}

func newNoise() noise {
	return noise{
		length: length{max: 64},
		lfsr:   0x7fff,
	}
}

func (n *noise) write(slot int, v uint8) {
	switch slot {
	case 1:
		n.length.load(int(v & 0x3f))
	case 2:
		n.dac = n.envelope.write(v)
		if !n.dac {
			n.enabled = false
		}
	case 3:
		n.shift = v >> 4
		n.narrow = v&0x08 != 0
		n.divisor = v & 0x07
	case 4:
		n.length.enabled = v&LengthEnable != 0
		if v&Trigger != 0 {
			n.enabled = n.dac
			n.length.trigger()
			n.envelope.trigger()
			n.lfsr = 0x7fff
			n.timer = 0
		}
	}
}

func (n *noise) advance(cycles float64) {
	// shift values of 14 and 15 stop the LFSR
	if !n.enabled || n.shift >= 14 {
		return
	}
	n.timer -= cycles
	step := float64(noiseDivisors[n.divisor] << n.shift)
	for n.timer <= 0 {
		n.timer += step
		x := (n.lfsr ^ (n.lfsr >> 1)) & 0x01
		n.lfsr = (n.lfsr >> 1) | (x << 14)
		if n.narrow {
			n.lfsr = n.lfsr&^0x40 | x<<6
		}
	}
}

func (n *noise) sample() float32 {
	if !n.enabled || !n.dac {
		return 0
	}
	s := float32(^n.lfsr&0x01)*2 - 1
	return s * float32(n.envelope.volume) / 15
}
