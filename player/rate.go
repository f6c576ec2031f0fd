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

package player

import "github.com/jetsetilly/quartet/song"

// VBlankFreq is the rate of the vertical blank interrupt.
const VBlankFreq = 59.7275

// the timer ticks at 4096Hz and overflows after (256 - TMA) ticks
const timerFreq = 4096.0

// TickRate returns the number of ticks per second for the timer divider
// value in the song header. A value of zero means the vertical blank.
func TickRate(divider uint8) float64 {
	if divider == 0 {
		return VBlankFreq
	}
	return timerFreq / float64(256-int(divider))
}

// SongTickRate returns the tick rate for the song. A nil song returns the
// vertical blank rate.
func SongTickRate(s *song.Song) float64 {
	if s == nil {
		return VBlankFreq
	}
	return TickRate(s.Header.TimerDivider)
}

// SampleCounter spreads the fractional number of samples per tick over many
// ticks so that no time is lost.
type SampleCounter struct {
	perTick float64
	acc     float64
}

// Set the sample rate and the tick rate. The fractional part of the count is
// reset.
func (s *SampleCounter) Set(sampleRate int, tickRate float64) {
	s.perTick = float64(sampleRate) / tickRate
	s.acc = 0
}

// PerTick returns the average number of samples per tick.
func (s *SampleCounter) PerTick() float64 {
	return s.perTick
}

// Next returns the number of samples for the next tick.
func (s *SampleCounter) Next() int {
	s.acc += s.perTick
	n := int(s.acc)
	s.acc -= float64(n)
	return n
}
