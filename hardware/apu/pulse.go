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

var dutyPatterns = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{1, 0, 0, 0, 0, 0, 0, 1}, // 25%
	{1, 0, 0, 0, 0, 1, 1, 1}, // 50%
	{0, 1, 1, 1, 1, 1, 1, 0}, // 75%
}

type pulse struct {
	enabled bool
	dac     bool

	hasSweep     bool
	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	sweepTimer   uint8
	sweepEnabled bool
	sweepShadow  uint16

	length   length
	envelope envelope

	period uint16
	duty   uint8
	step   uint8
	timer  float64
}

func newPulse(hasSweep bool) pulse {
	return pulse{
		hasSweep: hasSweep,
		length:   length{max: 64},
	}
}

func (p *pulse) write(slot int, v uint8) {
	switch slot {
	case 0:
		p.sweepPeriod = (v >> 4) & 0x07
		p.sweepNegate = v&0x08 != 0
		p.sweepShift = v & 0x07
	case 1:
		p.duty = v >> 6
		p.length.load(int(v & 0x3f))
	case 2:
		p.dac = p.envelope.write(v)
		if !p.dac {
			p.enabled = false
		}
	case 3:
		p.period = p.period&0x0700 | uint16(v)
	case 4:
		p.period = p.period&0x00ff | uint16(v&0x07)<<8
		p.length.enabled = v&LengthEnable != 0
		if v&Trigger != 0 {
			p.trigger()
		}
	}
}

func (p *pulse) trigger() {
	p.enabled = p.dac
	p.length.trigger()
	p.envelope.trigger()
	p.timer = 0

	if p.hasSweep {
		p.sweepShadow = p.period
		p.sweepTimer = p.sweepPeriod
		if p.sweepTimer == 0 {
			p.sweepTimer = 8
		}
		p.sweepEnabled = p.sweepPeriod > 0 || p.sweepShift > 0
		if p.sweepShift > 0 {
			p.sweepCalc()
		}
	}
}

func (p *pulse) sweepCalc() uint16 {
	delta := p.sweepShadow >> p.sweepShift
	var n uint16
	if p.sweepNegate {
		n = p.sweepShadow - delta
	} else {
		n = p.sweepShadow + delta
	}
	if n > 2047 {
		p.enabled = false
	}
	return n
}

func (p *pulse) clockSweep() {
	if !p.hasSweep || !p.sweepEnabled {
		return
	}
	if p.sweepTimer > 0 {
		p.sweepTimer--
	}
	if p.sweepTimer != 0 {
		return
	}

	p.sweepTimer = p.sweepPeriod
	if p.sweepTimer == 0 {
		p.sweepTimer = 8
	}

	if p.sweepPeriod > 0 {
		n := p.sweepCalc()
		if n <= 2047 && p.sweepShift > 0 {
			p.sweepShadow = n
			p.period = n
			p.sweepCalc()
		}
	}
}

// advance the waveform by a number of CPU cycles.
func (p *pulse) advance(cycles float64) {
	if !p.enabled {
		return
	}
	p.timer -= cycles
	step := float64((2048 - int(p.period)) * 4)
	for p.timer <= 0 {
		p.timer += step
		p.step = (p.step + 1) & 0x07
	}
}

func (p *pulse) sample() float32 {
	if !p.enabled || !p.dac {
		return 0
	}
	s := float32(dutyPatterns[p.duty][p.step])*2 - 1
	return s * float32(p.envelope.volume) / 15
}
