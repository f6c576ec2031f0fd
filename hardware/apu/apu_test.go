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

package apu_test

import (
	"testing"

	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/test"
)

type recorder struct {
	writes []apu.Register
	chans  []int
}

func (r *recorder) RegisterWrite(channel int, reg apu.Register, data uint8) {
	r.writes = append(r.writes, reg)
	r.chans = append(r.chans, channel)
}

func TestRegisterNames(t *testing.T) {
	test.ExpectEquality(t, apu.NR10.String(), "NR10")
	test.ExpectEquality(t, apu.NR21.String(), "NR21")
	test.ExpectEquality(t, apu.NR44.String(), "NR44")
	test.ExpectEquality(t, apu.NR52.String(), "NR52")
	test.ExpectEquality(t, apu.NR52, apu.Register(0xff26))
	test.ExpectEquality(t, apu.NR30, apu.Register(0xff1a))
	test.ExpectEquality(t, (apu.WaveRAM + 10).String(), "WAVA")

	test.ExpectEquality(t, apu.NR12.Channel(), 0)
	test.ExpectEquality(t, apu.NR24.Channel(), 1)
	test.ExpectEquality(t, apu.WaveRAMEnd.Channel(), 2)
	test.ExpectEquality(t, apu.NR43.Channel(), 3)
	test.ExpectEquality(t, apu.NR50.Channel(), -1)
	test.ExpectFailure(t, apu.Register(0xff15).Valid())
}

func TestPowerAndRead(t *testing.T) {
	a := apu.NewAPU(0)
	test.ExpectEquality(t, a.SampleRate(), apu.DefaultSampleRate)

	// writes are ignored while the APU is off, except for wave RAM
	a.Write(apu.NR12, 0xf0)
	a.Write(apu.WaveRAM, 0x12)
	test.ExpectEquality(t, a.Read(apu.NR12), uint8(0))
	test.ExpectEquality(t, a.Read(apu.WaveRAM), uint8(0x12))

	a.Write(apu.NR52, 0x80)
	a.Write(apu.NR12, 0xf0)
	test.ExpectEquality(t, a.Read(apu.NR12), uint8(0xf0))

	a.Write(apu.NR52, 0x00)
	test.ExpectEquality(t, a.Read(apu.NR12), uint8(0))
	test.ExpectEquality(t, a.Read(apu.WaveRAM), uint8(0x12))
}

func TestTracker(t *testing.T) {
	a := apu.NewAPU(0)
	r := &recorder{}
	a.SetTracker(r)

	a.Write(apu.NR52, 0x80)
	a.Write(apu.NR22, 0xf0)
	a.Write(apu.Register(0xff15), 0x00)
	a.Write(apu.WaveRAM+3, 0x00)

	test.ExpectEquality(t, len(r.writes), 3)
	test.ExpectEquality(t, r.chans[0], -1)
	test.ExpectEquality(t, r.chans[1], 1)
	test.ExpectEquality(t, r.chans[2], 2)
}

func TestRender(t *testing.T) {
	a := apu.NewAPU(48000)
	buf := make([]float32, 800)

	// silence while off
	a.Render(buf)
	for _, s := range buf {
		test.DemandEquality(t, s, float32(0))
	}

	a.Write(apu.NR52, 0x80)
	a.Write(apu.NR50, 0x77)
	a.Write(apu.NR51, 0xff)
	a.Write(apu.NR21, 0x80)
	a.Write(apu.NR22, 0xf0)
	a.Write(apu.NR23, 0x16)
	a.Write(apu.NR24, apu.Trigger|0x04)
	test.ExpectSuccess(t, a.Active(1))

	a.Render(buf)
	var hi, lo bool
	for _, s := range buf {
		test.DemandSuccess(t, s >= -1 && s <= 1)
		if s > 0 {
			hi = true
		}
		if s < 0 {
			lo = true
		}
	}
	test.ExpectSuccess(t, hi)
	test.ExpectSuccess(t, lo)

	// turning off the DAC stops the channel
	a.Write(apu.NR22, 0x00)
	test.ExpectFailure(t, a.Active(1))
}

func TestLengthCounter(t *testing.T) {
	a := apu.NewAPU(48000)
	a.Write(apu.NR52, 0x80)
	a.Write(apu.NR42, 0xf0)

	// length of 63 expires after a single 256Hz clock
	a.Write(apu.NR41, 63)
	a.Write(apu.NR44, apu.Trigger|apu.LengthEnable)
	test.ExpectSuccess(t, a.Active(3))

	// 1/64th of a second is enough for several length clocks
	buf := make([]float32, 48000/64)
	a.Render(buf)
	test.ExpectFailure(t, a.Active(3))
}

func TestWaveChannel(t *testing.T) {
	a := apu.NewAPU(48000)
	a.Write(apu.NR52, 0x80)
	a.Write(apu.NR51, 0xff)
	for i := apu.WaveRAM; i <= apu.WaveRAMEnd; i++ {
		a.Write(i, 0xf0)
	}

	// DAC is off so the trigger has no effect
	a.Write(apu.NR34, apu.Trigger)
	test.ExpectFailure(t, a.Active(2))

	a.Write(apu.NR30, 0x80)
	a.Write(apu.NR32, 0x20)
	a.Write(apu.NR34, apu.Trigger)
	test.ExpectSuccess(t, a.Active(2))
}
