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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/song"
	"github.com/jetsetilly/quartet/terminal"
	"github.com/jetsetilly/quartet/test"
)

func TestDecode(t *testing.T) {
	a, ch := terminal.Decode('3')
	test.ExpectEquality(t, a, terminal.ToggleMute)
	test.ExpectEquality(t, ch, driver.Wave)

	a, _ = terminal.Decode('5')
	test.ExpectEquality(t, a, terminal.NoAction)

	a, _ = terminal.Decode('w')
	test.ExpectEquality(t, a, terminal.ResetWave)
	a, _ = terminal.Decode('R')
	test.ExpectEquality(t, a, terminal.Restart)
	a, _ = terminal.Decode(terminal.KeyEsc)
	test.ExpectEquality(t, a, terminal.Quit)
	a, _ = terminal.Decode(terminal.KeyInterrupt)
	test.ExpectEquality(t, a, terminal.Quit)
}

func TestStatusLine(t *testing.T) {
	var s driver.State
	s.Position = driver.Position{Order: 1, Row: 12, Tick: 3}
	s.Tempo = 6
	s.Muted = driver.Pulse2.Bit() | driver.Noise.Bit()
	for i := range s.Channels {
		s.Channels[i].Note = song.NoNote
	}
	s.Channels[0].Note = 12

	test.ExpectEquality(t, terminal.StatusLine(s), "001:12.03 tempo 06 [1-3-] C-4 --- --- ---")

	s.Faults.BadWave = 2
	test.ExpectEquality(t, terminal.StatusLine(s), "001:12.03 tempo 06 [1-3-] C-4 --- --- --- faults 2")
}
