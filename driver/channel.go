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

	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/song"
)

// ChannelID identifies one of the four channels.
type ChannelID int

// List of channels.
const (
	Pulse1 ChannelID = iota
	Pulse2
	Wave
	Noise
)

// NumChannels is the number of channels played by the driver.
const NumChannels = 4

func (id ChannelID) String() string {
	switch id {
	case Pulse1:
		return "pulse1"
	case Pulse2:
		return "pulse2"
	case Wave:
		return "wave"
	case Noise:
		return "noise"
	}
	return fmt.Sprintf("channel%d", int(id))
}

// Bit returns the bit for the channel in the mute mask.
func (id ChannelID) Bit() uint8 {
	return 1 << uint(id)
}

// ChannelState is a snapshot of a channel.
type ChannelState struct {
	ID         ChannelID
	Note       song.Note
	Instrument int
	Period     int
	Volume     uint8
	Timbre     uint8
	Effect     Effect
	Param      uint8
	Cut        bool

	// the driver is writing to the channel. false when the channel is muted
	// or has not been triggered since it was unmuted
	Owned bool
}

func (cs ChannelState) String() string {
	return fmt.Sprintf("%-6s %s i%02d p%04d v%02x t%02x fx%X%02x owned=%v",
		cs.ID, cs.Note, cs.Instrument, cs.Period, cs.Volume, cs.Timbre,
		uint8(cs.Effect), cs.Param, cs.Owned)
}

// the number of register slots in a channel. see apu.ChannelRegisters
const numSlots = 5

// registers for a channel in slot order.
type registers [numSlots]uint8

// channel is implemented by the pulse, wave and noise types.
type channel interface {
	id() ChannelID
	base() *common

	// load the instrument with the 1-based number. returns false if the
	// instrument does not exist
	instrument(s *song.Song, n int) bool

	// set the voice to the defaults of the current instrument. called on
	// every note trigger. returns the instrument's subpattern
	defaults(s *song.Song) int

	// registers for the output of the effect processor
	registers(out output) registers

	// the silent register values written by StartSong()
	silence() []regWrite

	// writing to the volume register requires a retrigger for the new value
	// to take effect
	volumeRetrigger() bool
}

type regWrite struct {
	reg  apu.Register
	data uint8
}

// common channel state not seen by the effect processor.
type common struct {
	v voice

	// the driver owns the channel and can write to it
	owned bool

	// last values written to the registers
	shadow registers
}

func (c *common) base() *common {
	return c
}

func (c *common) reset() {
	c.v = voice{
		note:   song.NoNote,
		volume: 0xf0,
	}
	c.owned = false
	c.shadow = registers{}
}

func (c *common) state(id ChannelID) ChannelState {
	return ChannelState{
		ID:         id,
		Note:       c.v.note,
		Instrument: c.v.instrument,
		Period:     c.v.period,
		Volume:     c.v.volume,
		Timbre:     c.v.timbre,
		Effect:     c.v.effect,
		Param:      c.v.param,
		Cut:        c.v.cut,
		Owned:      c.owned,
	}
}
