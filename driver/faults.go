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
	"strings"
	"sync/atomic"
)

// Faults counts the problems found in the song data during playback, and the
// number of ticks that were skipped because StartSong() was in progress.
//
// None of the faults stop playback. The fault policy is:
//
//	BadPattern: the order matrix refers to a pattern that doesn't exist. The
//	channel plays an empty pattern
//
//	BadJump: a position jump beyond the order list or a pattern break to a
//	row beyond the end of the pattern. The order is replaced by order zero
//	and the row by row zero
//
//	BadInstrument: the channel keeps its current instrument
//
//	BadWave: the wave in wave RAM is not changed
//
//	BadSubpattern: the instrument subpattern stops
//
//	BadNote: the note is ignored
//
//	BadTempo: a set tempo effect of zero is ignored
//
//	Unsupported: an unknown effect, or a call routine effect with no
//	routine. The channel holds its last state
type Faults struct {
	BadPattern    uint32
	BadJump       uint32
	BadInstrument uint32
	BadWave       uint32
	BadSubpattern uint32
	BadNote       uint32
	BadTempo      uint32
	Unsupported   uint32
	Skipped       uint32
}

// Total returns the number of song data faults. Skipped ticks are not
// included.
func (f Faults) Total() uint32 {
	return f.BadPattern + f.BadJump + f.BadInstrument + f.BadWave +
		f.BadSubpattern + f.BadNote + f.BadTempo + f.Unsupported
}

func (f Faults) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pattern=%d jump=%d instrument=%d wave=%d ",
		f.BadPattern, f.BadJump, f.BadInstrument, f.BadWave))
	s.WriteString(fmt.Sprintf("subpattern=%d note=%d tempo=%d unsupported=%d",
		f.BadSubpattern, f.BadNote, f.BadTempo, f.Unsupported))
	if f.Skipped > 0 {
		s.WriteString(fmt.Sprintf(" skipped=%d", f.Skipped))
	}
	return s.String()
}

// the driver's fault counters. the skipped counter is written outside of the
// tick goroutine and all counters can be read from any goroutine
type faults struct {
	badPattern    atomic.Uint32
	badJump       atomic.Uint32
	badInstrument atomic.Uint32
	badWave       atomic.Uint32
	badSubpattern atomic.Uint32
	badNote       atomic.Uint32
	badTempo      atomic.Uint32
	unsupported   atomic.Uint32
	skipped       atomic.Uint32
}

func (f *faults) snapshot() Faults {
	return Faults{
		BadPattern:    f.badPattern.Load(),
		BadJump:       f.badJump.Load(),
		BadInstrument: f.badInstrument.Load(),
		BadWave:       f.badWave.Load(),
		BadSubpattern: f.badSubpattern.Load(),
		BadNote:       f.badNote.Load(),
		BadTempo:      f.badTempo.Load(),
		Unsupported:   f.unsupported.Load(),
		Skipped:       f.skipped.Load(),
	}
}

// reset the song data faults. the skipped counter is not reset
func (f *faults) reset() {
	f.badPattern.Store(0)
	f.badJump.Store(0)
	f.badInstrument.Store(0)
	f.badWave.Store(0)
	f.badSubpattern.Store(0)
	f.badNote.Store(0)
	f.badTempo.Store(0)
	f.unsupported.Store(0)
}
