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

package driver_test

import (
	"testing"

	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/song"
	"github.com/jetsetilly/quartet/test"
)

func TestPortamento(t *testing.T) {
	d := songData(255)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x1, Param: 0x10}
	d.Patterns[1][0] = song.Cell{Note: 0, Instrument: 1, Effect: 0x2, Param: 0x05}

	drv, snk := start(t, d)

	drv.Tick()
	base := snk.period(driver.Pulse1)
	test.DemandEquality(t, base, 1046)

	for n := 1; n < 100; n++ {
		drv.Tick()
		expected := min(base+n*0x10, driver.MaxPeriod)
		test.DemandEquality(t, snk.period(driver.Pulse1), expected, n)

		expected = max(44-n*5, 0)
		test.DemandEquality(t, snk.period(driver.Pulse2), expected, n)
	}

	// the period only changes on ticks after the row tick, so no retrigger
	snk.clear()
	drv.Tick()
	test.ExpectFailure(t, snk.triggered(driver.Pulse1))
	test.ExpectEquality(t, snk.count(driver.Pulse1), 0)
}

func TestTonePortamento(t *testing.T) {
	d := songData(3)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1}
	d.Patterns[0][1] = song.Cell{Note: 16, Effect: 0x3, Param: 0x30}
	d.Patterns[0][2] = song.EffectCell(0x3, 0x30)
	d.Patterns[0][3] = song.EffectCell(0x3, 0x30)
	d.Patterns[0][4] = song.EffectCell(0x3, 0x30)

	drv, snk := start(t, d)
	ticks(drv, 3)

	target := driver.NotePeriod(16)

	// row 1 does not retrigger
	snk.clear()
	drv.Tick()
	test.ExpectFailure(t, snk.triggered(driver.Pulse1))
	test.ExpectEquality(t, snk.period(driver.Pulse1), 1046)

	prev := 1046
	for i := 0; i < 11; i++ {
		drv.Tick()
		p := snk.period(driver.Pulse1)
		test.DemandSuccess(t, p >= prev && p <= target, i)
		prev = p
	}
	test.ExpectEquality(t, prev, target)
	test.ExpectFailure(t, snk.triggered(driver.Pulse1))
}

func TestVibrato(t *testing.T) {
	d := songData(255)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x4, Param: 0x4f}
	d.Patterns[1][0] = song.Cell{Note: 0, Instrument: 1, Effect: 0x4, Param: 0x4f}

	drv, snk := start(t, d)
	drv.Tick()

	lo, hi := 1046, 1046
	for i := 0; i < 16; i++ {
		drv.Tick()
		p := snk.period(driver.Pulse1)
		lo = min(lo, p)
		hi = max(hi, p)

		p = snk.period(driver.Pulse2)
		test.DemandSuccess(t, p >= 0 && p <= driver.MaxPeriod)
	}

	test.ExpectInequality(t, hi, 1046)
	test.ExpectEquality(t, hi-1046, 1046-lo)

	// a full cycle returns to the base period
	test.ExpectEquality(t, snk.period(driver.Pulse1), 1046)
	test.ExpectEquality(t, snk.period(driver.Pulse2), 44)
}

func TestVolumeSlide(t *testing.T) {
	d := songData(255)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0xa, Param: 0x01}
	d.Patterns[1][0] = song.Cell{Note: 12, Instrument: 3, Effect: 0xa, Param: 0x20}

	drv, snk := start(t, d)
	drv.Tick()
	test.ExpectEquality(t, snk.regs[apu.NR12], uint8(0xf0))
	test.ExpectEquality(t, snk.regs[apu.NR22], uint8(0x50))

	// a volume change retriggers the channel
	snk.clear()
	drv.Tick()
	test.ExpectEquality(t, snk.regs[apu.NR12], uint8(0xe0))
	test.ExpectEquality(t, snk.regs[apu.NR22], uint8(0x70))
	test.ExpectSuccess(t, snk.triggered(driver.Pulse1))
	test.ExpectSuccess(t, snk.triggered(driver.Pulse2))

	ticks(drv, 20)
	test.ExpectEquality(t, snk.regs[apu.NR12], uint8(0x00))
	test.ExpectEquality(t, snk.regs[apu.NR22], uint8(0xf0))

	// saturated volumes are not written again
	snk.clear()
	drv.Tick()
	test.ExpectEquality(t, len(snk.writes), 0)
}

func TestArpeggio(t *testing.T) {
	d := songData(255)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x0, Param: 0x47}
	d.Patterns[3][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x0, Param: 0x47}

	drv, snk := start(t, d)

	expected := []int{1046, driver.NotePeriod(16), driver.NotePeriod(19)}
	for i := 0; i < 9; i++ {
		drv.Tick()
		test.ExpectEquality(t, snk.period(driver.Pulse1), expected[i%3], i)
		test.ExpectEquality(t, snk.regs[apu.NR43]&0xf7, driver.NoisePoly(song.Note(12).Offset([]int{0, 4, 7}[i%3])), i)
	}
}

func TestDutyCycling(t *testing.T) {
	d := songData(255)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 2}

	drv, snk := start(t, d)

	for i := 0; i < 8; i++ {
		snk.clear()
		drv.Tick()
		test.ExpectEquality(t, snk.regs[apu.NR11], uint8(i%4)<<6, i)
		if i > 0 {
			// the duty changes without a retrigger
			test.ExpectFailure(t, snk.triggered(driver.Pulse1), i)
			test.ExpectEquality(t, snk.count(driver.Pulse1), 1, i)
		}
	}
}

func TestNoteDelayAndCut(t *testing.T) {
	d := songData(6)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x7, Param: 3}
	d.Patterns[0][1] = song.EffectCell(0xe, 2)
	d.Patterns[1][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0x7, Param: 9}

	drv, snk := start(t, d)

	ticks(drv, 3)
	test.ExpectEquality(t, snk.count(driver.Pulse1), 0)

	// tick 3 of the row
	drv.Tick()
	test.ExpectSuccess(t, snk.triggered(driver.Pulse1))
	test.ExpectEquality(t, snk.period(driver.Pulse1), 1046)

	// row 1, tick 2
	ticks(drv, 2)
	snk.clear()
	ticks(drv, 2)
	test.ExpectFailure(t, drv.Channel(driver.Pulse1).Cut)
	snk.clear()
	drv.Tick()
	test.ExpectEquality(t, drv.Position(), driver.Position{Order: 0, Row: 1, Tick: 2})
	test.ExpectSuccess(t, drv.Channel(driver.Pulse1).Cut)
	test.ExpectEquality(t, snk.regs[apu.NR12], uint8(0x00))

	// a delay longer than the row never triggers
	test.ExpectEquality(t, snk.count(driver.Pulse2), 0)
	test.ExpectEquality(t, drv.Channel(driver.Pulse2).Note, song.NoNote)
}

func TestSetVolumeAndTimbre(t *testing.T) {
	d := songData(4)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1, Effect: 0xc, Param: 0x83}
	d.Patterns[0][1] = song.EffectCell(0x9, 0xc0)
	d.Patterns[2][0] = song.Cell{Note: 24, Instrument: 1, Effect: 0xc, Param: 0x40}
	d.Patterns[3][0] = song.Cell{Note: 24, Instrument: 1, Effect: 0x9, Param: 0x80}

	drv, snk := start(t, d)
	drv.Tick()
	test.ExpectEquality(t, snk.regs[apu.NR12], uint8(0x83))
	test.ExpectEquality(t, snk.regs[apu.NR32], uint8(0x60))
	test.ExpectEquality(t, snk.regs[apu.NR43]&0x08, uint8(0x08))

	ticks(drv, 3)
	snk.clear()
	drv.Tick()
	test.ExpectEquality(t, snk.regs[apu.NR11], uint8(0xc0))
	test.ExpectFailure(t, snk.triggered(driver.Pulse1))
}

// a cell with an effect and no note leaves the sounding note alone. a zero
// note is C-3 and triggers a new note
func TestEffectOnlyRow(t *testing.T) {
	d := songData(2)
	d.Patterns[0][0] = song.Cell{Note: 12, Instrument: 1}
	d.Patterns[0][1] = song.EffectCell(0x9, 0xc0)
	d.Patterns[1][0] = song.Cell{Note: 12, Instrument: 1}
	d.Patterns[1][1] = song.Cell{Note: 0, Effect: 0x9, Param: 0xc0}

	drv, snk := start(t, d)
	ticks(drv, 2)

	snk.clear()
	drv.Tick()
	test.ExpectFailure(t, snk.triggered(driver.Pulse1))
	test.ExpectEquality(t, snk.period(driver.Pulse1), 1046)
	test.ExpectEquality(t, snk.regs[apu.NR11], uint8(0xc0))
	test.ExpectEquality(t, drv.Channel(driver.Pulse1).Note, song.Note(12))

	test.ExpectSuccess(t, snk.triggered(driver.Pulse2))
	test.ExpectEquality(t, snk.period(driver.Pulse2), 44)
	test.ExpectEquality(t, drv.Channel(driver.Pulse2).Note, song.Note(0))
}
