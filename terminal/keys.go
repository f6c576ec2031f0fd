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

package terminal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/quartet/driver"
)

// Action is the result of a key press.
type Action int

// List of actions.
const (
	NoAction Action = iota
	ToggleMute
	ResetWave
	Restart
	Quit
)

// ASCII codes for keys that are not printable.
const (
	KeyInterrupt = 3
	KeyEsc       = 27
)

// Decode a key press. The channel is only meaningful for ToggleMute.
func Decode(key byte) (Action, driver.ChannelID) {
	switch key {
	case '1', '2', '3', '4':
		return ToggleMute, driver.ChannelID(key - '1')
	case 'w', 'W':
		return ResetWave, 0
	case 'r', 'R':
		return Restart, 0
	case 'q', 'Q', KeyEsc, KeyInterrupt:
		return Quit, 0
	}
	return NoAction, 0
}

// StatusLine summarises the state of the driver.
func StatusLine(s driver.State) string {
	var mute strings.Builder
	for ch := range driver.NumChannels {
		id := driver.ChannelID(ch)
		switch {
		case s.Muted&id.Bit() != 0:
			mute.WriteByte('-')
		default:
			mute.WriteByte(byte('1' + ch))
		}
	}

	var notes strings.Builder
	for _, c := range s.Channels {
		fmt.Fprintf(&notes, " %s", c.Note)
	}

	line := fmt.Sprintf("%s tempo %02d [%s]%s", s.Position, s.Tempo, mute.String(), notes.String())
	if t := s.Faults.Total(); t > 0 {
		line = fmt.Sprintf("%s faults %d", line, t)
	}
	return line
}
