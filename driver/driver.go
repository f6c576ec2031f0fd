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
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/jetsetilly/quartet/environment"
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/logger"
	"github.com/jetsetilly/quartet/song"
)

// RoutineFunc is called by the call routine effect on the row tick. The
// param argument is the effect parameter.
type RoutineFunc func(ch ChannelID, param uint8)

// values of the driver's state word.
const (
	stateIdle int32 = iota
	stateTicking
	stateStarting
)

// Position of playback. Tick is the tick within the row and is zero on the
// row tick.
type Position struct {
	Order int
	Row   int
	Tick  int
}

func (p Position) String() string {
	return fmt.Sprintf("%03d:%02d.%02d", p.Order, p.Row, p.Tick)
}

// State is a snapshot of the driver.
type State struct {
	Position   Position
	Tempo      int
	Muted      uint8
	LoadedWave int
	Channels   [NumChannels]ChannelState
	Faults     Faults
}

// Driver plays a song by writing to an apu.Sink.
type Driver struct {
	perm logger.Permission
	sink apu.Sink

	// idle, ticking or starting
	state atomic.Int32

	// channel mute mask. bit 0 is Pulse1
	muted atomic.Uint32

	// the wave currently in wave RAM. ResetWaveID if it is unknown
	loadedWave atomic.Int32

	song   *song.Song
	reader song.Reader
	tempo  int

	// counts down to the next row
	counter int

	pos Position

	pulse1 pulse
	pulse2 pulse
	wave   wave
	noise  noise

	// the four channels in ChannelID order
	channels [NumChannels]channel

	routine RoutineFunc

	faults faults
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The env argument can be nil.
func NewDriver(env *environment.Environment, sink apu.Sink) *Driver {
	d := &Driver{
		perm: logger.Allow,
		sink: sink,
	}
	if env != nil {
		d.perm = env
	}

	d.pulse1.ch = Pulse1
	d.pulse2.ch = Pulse2
	d.channels = [NumChannels]channel{&d.pulse1, &d.pulse2, &d.wave, &d.noise}
	for _, c := range d.channels {
		c.base().reset()
	}
	d.loadedWave.Store(ResetWaveID)

	return d
}

// SetRoutine sets the function called by the call routine effect. A nil value
// removes the function. Must not be called while Tick() is running.
func (d *Driver) SetRoutine(f RoutineFunc) {
	d.routine = f
}

// StartSong resets playback to the start of the song. A nil song stops
// playback. If Tick() is running on another goroutine then StartSong() waits
// for it to finish.
//
// Channels that are not muted are silenced.
func (d *Driver) StartSong(s *song.Song) {
	for !d.state.CompareAndSwap(stateIdle, stateStarting) {
		runtime.Gosched()
	}
	defer d.state.Store(stateIdle)

	d.song = s
	d.faults.reset()
	d.loadedWave.Store(ResetWaveID)
	d.pos = Position{}
	for _, c := range d.channels {
		c.base().reset()
	}

	d.sink.Write(apu.NR52, 0x80)
	d.sink.Write(apu.NR50, 0x77)
	d.sink.Write(apu.NR51, 0xff)

	muted := d.Muted()
	for _, c := range d.channels {
		if muted&c.id().Bit() != 0 {
			continue
		}
		for _, w := range c.silence() {
			d.sink.Write(w.reg, w.data)
		}
	}

	if s == nil {
		logger.Log(d.perm, "driver", "stopped")
		return
	}

	d.reader = song.NewReader(s)
	d.tempo = int(s.Header.Tempo)

	// the first tick processes the first row
	d.counter = 1

	logger.Logf(d.perm, "driver", "start song: tempo %d, %d orders, %d patterns",
		s.Header.Tempo, s.Header.Orders, s.Header.Patterns)
}

// Tick advances playback by one tick. It must be called at the rate given by
// the song header. If StartSong() is in progress the tick is skipped and
// counted in Faults.Skipped.
func (d *Driver) Tick() {
	if !d.state.CompareAndSwap(stateIdle, stateTicking) {
		d.faults.skipped.Add(1)
		return
	}
	defer d.state.Store(stateIdle)

	if d.song == nil {
		return
	}

	d.counter--
	if d.counter <= 0 {
		d.counter = d.tempo
		d.pos.Tick = 0
		d.processRow()
	} else {
		d.pos.Tick++
	}

	muted := uint8(d.muted.Load())
	for _, c := range d.channels {
		d.step(c, muted)
	}
}

// processRow reads the row at the reader position, triggers notes, performs
// the row effects and advances the reader.
func (d *Driver) processRow() {
	d.pos.Order, d.pos.Row = d.reader.Position()

	jumpOrder := -1
	breakRow := -1

	for _, c := range d.channels {
		cell, ok := d.reader.Cell(int(c.id()))
		if !ok {
			d.faults.badPattern.Add(1)
		}

		v := &c.base().v
		v.effect = Effect(cell.Effect)
		v.param = cell.Param
		v.delay = 0

		switch v.effect {
		case MasterVol:
			d.sink.Write(apu.NR50, cell.Param)
		case Panning:
			d.sink.Write(apu.NR51, cell.Param)
		case SetTempo:
			if cell.Param == 0 {
				d.faults.badTempo.Add(1)
			} else {
				d.tempo = int(cell.Param)
				d.counter = d.tempo
			}
		case PosJump:
			jumpOrder = int(cell.Param)
		case PatBreak:
			breakRow = int(cell.Param)
		case CallRoutine:
			if d.routine == nil {
				d.faults.unsupported.Add(1)
			} else {
				d.routine(c.id(), cell.Param)
			}
		}

		if v.effect == NoteDelay && cell.Param > 0 && cell.Note != song.NoNote {
			v.delayed = cell
			v.delay = int(cell.Param)
			continue
		}

		d.cell(c, cell)
	}

	if jumpOrder < 0 && breakRow < 0 {
		d.reader.Advance()
		return
	}

	order := d.reader.NextOrder()
	if jumpOrder >= 0 {
		order = jumpOrder
	}
	row := 0
	if breakRow >= 0 {
		row = breakRow
	}
	if !d.reader.Jump(order, row) {
		d.faults.badJump.Add(1)
	}
}

// cell applies the note and instrument of a cell to the channel.
func (d *Driver) cell(c channel, cell song.Cell) {
	v := &c.base().v

	if cell.Instrument != 0 {
		if c.instrument(d.song, int(cell.Instrument)) {
			v.instrument = int(cell.Instrument)
		} else {
			d.faults.badInstrument.Add(1)
		}
	}

	if cell.Note == song.NoNote {
		return
	}
	if !cell.Note.Valid() {
		d.faults.badNote.Add(1)
		return
	}

	// tone portamento slides to the note without a trigger. a channel that
	// has never played a note is triggered as normal
	if v.effect == TonePorta && v.note != song.NoNote {
		v.note = cell.Note
		v.target = NotePeriod(cell.Note)
		return
	}

	v.note = cell.Note
	v.period = NotePeriod(cell.Note)
	v.target = v.period
	v.vibPhase = 0
	v.cut = false
	v.subpattern = c.defaults(d.song)
	v.subNext = 0
	v.subValid = false
	v.trigger = true
}

// step runs the effect processor for the channel and commits the result.
func (d *Driver) step(c channel, muted uint8) {
	b := c.base()
	v := &b.v

	if v.delay > 0 && d.pos.Tick == v.delay {
		v.delay = 0
		d.cell(c, v.delayed)
	}

	v.subValid = false
	if v.subpattern != 0 {
		row, ok := d.song.SubpatternRow(v.subpattern, v.subNext)
		if ok {
			v.sub = row
			v.subValid = true
			v.subNext = int(row.Next)
		} else {
			d.faults.badSubpattern.Add(1)
			v.subpattern = 0
		}
	}

	prevTimbre := v.timbre
	nv, out := process(*v, d.pos.Tick)
	*v = nv

	if out.unsupported && d.pos.Tick == 0 {
		d.faults.unsupported.Add(1)
	}
	if out.subUnsupported {
		d.faults.unsupported.Add(1)
	}

	trigger := v.trigger
	v.trigger = false

	if muted&c.id().Bit() != 0 {
		b.owned = false
		return
	}
	if trigger {
		b.owned = true
	}
	if !b.owned {
		return
	}

	d.commit(c, out, trigger, v.timbre != prevTimbre)
}

// commit writes the channel registers. all registers are written on a
// trigger. otherwise only the registers that have changed are written.
func (d *Driver) commit(c channel, out output, trigger bool, retimbre bool) {
	b := c.base()
	regs := c.registers(out)
	addrs := &apu.ChannelRegisters[c.id()]

	if c.id() == Wave && (trigger || retimbre) {
		if d.loadWave(int(out.timbre)) {
			trigger = true
		}
	}

	if trigger {
		for s := 0; s < numSlots-1; s++ {
			if addrs[s] != 0 {
				d.sink.Write(addrs[s], regs[s])
			}
		}
		d.sink.Write(addrs[numSlots-1], regs[numSlots-1]|apu.Trigger)
		b.shadow = regs
		return
	}

	retrigger := false
	for s := 0; s < numSlots-1; s++ {
		if addrs[s] == 0 || regs[s] == b.shadow[s] {
			continue
		}
		d.sink.Write(addrs[s], regs[s])
		if s == 2 && c.volumeRetrigger() {
			retrigger = true
		}
	}

	if retrigger {
		d.sink.Write(addrs[numSlots-1], regs[numSlots-1]|apu.Trigger)
	} else if regs[numSlots-1] != b.shadow[numSlots-1] {
		d.sink.Write(addrs[numSlots-1], regs[numSlots-1])
	}

	b.shadow = regs
}

// loadWave copies the wave to wave RAM if it is not already there. returns
// true if wave RAM was written to, in which case the wave channel must be
// retriggered.
func (d *Driver) loadWave(id int) bool {
	if int(d.loadedWave.Load()) == id {
		return false
	}

	w, ok := d.song.Wave(id)
	if !ok {
		d.faults.badWave.Add(1)
		return false
	}

	// the DAC must be off while wave RAM is written to
	d.sink.Write(apu.NR30, 0x00)
	for i, b := range w {
		d.sink.Write(apu.WaveRAM+apu.Register(i), b)
	}
	d.loadedWave.Store(int32(id))

	return true
}
