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

import "github.com/jetsetilly/quartet/song"

// Song returns the current song. Nil if no song is playing.
func (d *Driver) Song() *song.Song {
	return d.song
}

// Position returns the current playback position.
func (d *Driver) Position() Position {
	return d.pos
}

// Tempo returns the number of ticks per row.
func (d *Driver) Tempo() int {
	return d.tempo
}

// Faults returns the fault counters. It is safe to call from any goroutine.
func (d *Driver) Faults() Faults {
	return d.faults.snapshot()
}

// Channel returns a snapshot of the channel.
func (d *Driver) Channel(id ChannelID) ChannelState {
	if id < 0 || id >= NumChannels {
		return ChannelState{ID: id}
	}
	return d.channels[id].base().state(id)
}

// State returns a snapshot of the driver.
func (d *Driver) State() State {
	s := State{
		Position:   d.pos,
		Tempo:      d.tempo,
		Muted:      d.Muted(),
		LoadedWave: d.LoadedWave(),
		Faults:     d.Faults(),
	}
	for i := range s.Channels {
		s.Channels[i] = d.Channel(ChannelID(i))
	}
	return s
}
