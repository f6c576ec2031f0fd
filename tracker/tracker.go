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

// Package tracker keeps a history of the writes made to the sound registers.
// The Tracker type implements the apu.Tracker interface.
package tracker

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/quartet/hardware/apu"
)

// DefaultMaxEntries is the number of entries kept by a Tracker created with a
// maximum of zero.
const DefaultMaxEntries = 1024

// Entry is a single register write.
type Entry struct {
	Frame    int
	Channel  int
	Register apu.Register
	Data     uint8

	// the musical note and timbre of the channel after the write
	MusicalNote MusicalNote
	Timbre      string
}

func (e Entry) String() string {
	ch := "-"
	if e.Channel >= 0 {
		ch = fmt.Sprintf("%d", e.Channel+1)
	}
	return fmt.Sprintf("%06d ch%s %-4s %02x %-3s %s", e.Frame, ch, e.Register, e.Data, e.MusicalNote, e.Timbre)
}

// Tracker implements the apu.Tracker interface and keeps a history of the
// register writes over time.
type Tracker struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry
	frame      int

	// the register values for each channel so that the musical note can be
	// found after a write to any of the period registers
	regs [4][5]uint8
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The oldest entries are discarded when there are more than maxEntries.
func NewTracker(maxEntries int) *Tracker {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Tracker{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// RegisterWrite implements the apu.Tracker interface.
func (tr *Tracker) RegisterWrite(channel int, reg apu.Register, data uint8) {
	tr.crit.Lock()
	defer tr.crit.Unlock()

	e := Entry{
		Frame:       tr.frame,
		Channel:     channel,
		Register:    reg,
		Data:        data,
		MusicalNote: NoMusicalNote,
	}

	if channel >= 0 && !reg.IsWaveRAM() {
		for slot, r := range apu.ChannelRegisters[channel] {
			if r == reg {
				tr.regs[channel][slot] = data
			}
		}
		e.MusicalNote = LookupMusicalNote(channel, tr.regs[channel])
		e.Timbre = LookupTimbre(channel, tr.regs[channel])
	}

	tr.entries = append(tr.entries, e)
	if len(tr.entries) > tr.maxEntries {
		tr.entries = tr.entries[1:]
	}
}

// EndFrame marks the end of a tick. Entries are numbered by the frame they
// happened in.
func (tr *Tracker) EndFrame() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.frame++
}

// Frame returns the current frame number.
func (tr *Tracker) Frame() int {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return tr.frame
}

// Reset removes all entries and sets the frame number to zero.
func (tr *Tracker) Reset() {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.entries = tr.entries[:0]
	tr.frame = 0
	tr.regs = [4][5]uint8{}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	c := make([]Entry, len(tr.entries))
	copy(c, tr.entries)
	return c
}

// BorrowTracker gives the provided function the critical section and access
// to the list of entries. The slice must not be retained after the function
// returns.
func (tr *Tracker) BorrowTracker(f func([]Entry)) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	f(tr.entries)
}

// Write the entries to io.Writer, one per line.
func (tr *Tracker) Write(w io.Writer) error {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	for _, e := range tr.entries {
		if _, err := io.WriteString(w, e.String()+"\n"); err != nil {
			return fmt.Errorf("tracker: %w", err)
		}
	}
	return nil
}
