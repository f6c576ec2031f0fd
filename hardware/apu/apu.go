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

import (
	"fmt"
	"strings"
)

// ClockFreq is the frequency of the CPU clock that drives the sound hardware.
const ClockFreq = 4194304

// DefaultSampleRate is used if NewAPU() is given a sample rate of zero.
const DefaultSampleRate = 48000

// the frame sequencer is clocked at 512Hz.
const frameSequencerCycles = ClockFreq / 512

// Tracker implementations record the writes made to the APU.
type Tracker interface {
	// RegisterWrite is called for every write. Channel is the value returned
	// by Register.Channel()
	RegisterWrite(channel int, reg Register, data uint8)
}

// APU implements the Sink interface.
type APU struct {
	regs    [fileSize]uint8
	enabled bool

	pulse1 pulse
	pulse2 pulse
	wave   wave
	noise  noise

	waveRAM [16]uint8

	sampleRate      int
	cyclesPerSample float64
	frameCycles     float64
	frameStep       int

	// the addition of a tracker is not required
	tracker Tracker
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU(sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	a := &APU{
		pulse1:          newPulse(true),
		pulse2:          newPulse(false),
		noise:           newNoise(),
		sampleRate:      sampleRate,
		cyclesPerSample: float64(ClockFreq) / float64(sampleRate),
	}
	a.wave.length.max = 256
	a.wave.ram = &a.waveRAM
	return a
}

// SetTracker adds a Tracker implementation to the APU.
func (a *APU) SetTracker(tracker Tracker) {
	a.tracker = tracker
}

// SampleRate returns the number of samples per second produced by Render().
func (a *APU) SampleRate() int {
	return a.sampleRate
}

func (a *APU) String() string {
	s := strings.Builder{}
	for ch := range ChannelRegisters {
		if ch > 0 {
			s.WriteString("  ")
		}
		s.WriteString(fmt.Sprintf("ch%d:", ch+1))
		for _, r := range ChannelRegisters[ch] {
			if r == 0 {
				s.WriteString(" --")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", a.Read(r)))
			}
		}
	}
	return s.String()
}

// Read returns the last value written to the register. Unused addresses read
// as zero.
func (a *APU) Read(reg Register) uint8 {
	if reg < NR10 || reg > WaveRAMEnd {
		return 0
	}
	if reg.IsWaveRAM() {
		return a.waveRAM[reg-WaveRAM]
	}
	return a.regs[reg-NR10]
}

// Active returns true if the channel is currently producing sound.
func (a *APU) Active(channel int) bool {
	switch channel {
	case 0:
		return a.pulse1.enabled
	case 1:
		return a.pulse2.enabled
	case 2:
		return a.wave.enabled
	case 3:
		return a.noise.enabled
	}
	return false
}

// Write implements the Sink interface.
func (a *APU) Write(reg Register, data uint8) {
	if !reg.Valid() {
		return
	}

	if a.tracker != nil {
		a.tracker.RegisterWrite(reg.Channel(), reg, data)
	}

	// wave RAM can be written to while the APU is off
	if reg.IsWaveRAM() {
		a.waveRAM[reg-WaveRAM] = data
		return
	}

	if reg == NR52 {
		a.power(data&0x80 != 0)
		a.regs[reg-NR10] = data & 0x80
		return
	}

	if !a.enabled {
		return
	}

	a.regs[reg-NR10] = data

	ch := reg.Channel()
	if ch < 0 {
		return
	}

	slot := -1
	for i, r := range ChannelRegisters[ch] {
		if r == reg {
			slot = i
			break
		}
	}

	switch ch {
	case 0:
		a.pulse1.write(slot, data)
	case 1:
		a.pulse2.write(slot, data)
	case 2:
		a.wave.write(slot, data)
	case 3:
		a.noise.write(slot, data)
	}
}

func (a *APU) power(on bool) {
	if on == a.enabled {
		return
	}
	a.enabled = on
	if !on {
		for i := range a.regs {
			a.regs[i] = 0
		}
		a.pulse1 = newPulse(true)
		a.pulse2 = newPulse(false)
		a.wave = wave{ram: &a.waveRAM}
		a.wave.length.max = 256
		a.noise = newNoise()
	}
	a.frameStep = 0
	a.frameCycles = 0
}

func (a *APU) clockFrameSequencer() {
	if a.frameStep%2 == 0 {
		if !a.pulse1.length.clock() {
			a.pulse1.enabled = false
		}
		if !a.pulse2.length.clock() {
			a.pulse2.enabled = false
		}
		if !a.wave.length.clock() {
			a.wave.enabled = false
		}
		if !a.noise.length.clock() {
			a.noise.enabled = false
		}
	}

	if a.frameStep == 2 || a.frameStep == 6 {
		a.pulse1.clockSweep()
	}

	if a.frameStep == 7 {
		a.pulse1.envelope.clock()
		a.pulse2.envelope.clock()
		a.noise.envelope.clock()
	}

	a.frameStep = (a.frameStep + 1) & 0x07
}

// Render fills the buffer with mono samples in the range -1.0 to 1.0.
func (a *APU) Render(buf []float32) {
	for i := range buf {
		if !a.enabled {
			buf[i] = 0
			continue
		}

		a.frameCycles += a.cyclesPerSample
		for a.frameCycles >= frameSequencerCycles {
			a.frameCycles -= frameSequencerCycles
			a.clockFrameSequencer()
		}

		a.pulse1.advance(a.cyclesPerSample)
		a.pulse2.advance(a.cyclesPerSample)
		a.wave.advance(a.cyclesPerSample)
		a.noise.advance(a.cyclesPerSample)

		// NR51 routes each channel to the left and/or right output. a
		// channel is heard in the mono mix if it is routed to either
		pan := a.regs[NR51-NR10]
		pan = pan | pan>>4

		var mix float32
		if pan&0x01 != 0 {
			mix += a.pulse1.sample()
		}
		if pan&0x02 != 0 {
			mix += a.pulse2.sample()
		}
		if pan&0x04 != 0 {
			mix += a.wave.sample()
		}
		if pan&0x08 != 0 {
			mix += a.noise.sample()
		}

		// the louder of the two NR50 volumes
		vol := a.regs[NR50-NR10]
		left := (vol >> 4) & 0x07
		right := vol & 0x07
		if right > left {
			left = right
		}

		buf[i] = mix / 4 * float32(left+1) / 8
	}
}
