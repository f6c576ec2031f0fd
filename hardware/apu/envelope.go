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

// envelope and length counter shared by the pulse and noise channels.
type envelope struct {
	initial  uint8
	increase bool
	period   uint8
	timer    uint8
	volume   uint8
}

// write NRx2 value. returns true if the DAC is enabled by the value.
func (e *envelope) write(v uint8) bool {
	e.initial = v >> 4
	e.increase = v&0x08 != 0
	e.period = v & 0x07
	return v&0xf8 != 0
}

func (e *envelope) trigger() {
	e.timer = e.period
	e.volume = e.initial
}

func (e *envelope) clock() {
	if e.period == 0 {
		return
	}
	if e.timer > 0 {
		e.timer--
	}
	if e.timer == 0 {
		e.timer = e.period
		if e.increase && e.volume < 15 {
			e.volume++
		} else if !e.increase && e.volume > 0 {
			e.volume--
		}
	}
}

type length struct {
	max     int
	counter int
	enabled bool
}

func (l *length) load(v int) {
	l.counter = l.max - v
}

func (l *length) trigger() {
	if l.counter == 0 {
		l.counter = l.max
	}
}

// clock returns false if the length counter has expired.
func (l *length) clock() bool {
	if !l.enabled || l.counter == 0 {
		return true
	}
	l.counter--
	return l.counter > 0
}
