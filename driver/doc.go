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

// Package driver plays a song by writing to the four channels of an
// apu.Sink, one tick at a time.
//
// The Driver type is created with NewDriver() and a song is started with
// StartSong(). The Tick() function must then be called at the rate given by
// the song header: either once per vertical blank or on the timer interrupt.
// Tick() never fails. Problems with the song data are contained and counted,
// and can be inspected with the Faults() function.
//
// A channel can be borrowed by the caller, for example to play a sound
// effect, by setting its bit in the mute mask. The driver stops writing to a
// muted channel from the next tick. When the bit is cleared the driver does
// not write to the channel again until the channel's next note is triggered.
//
// The wave channel needs special care when it is borrowed. The driver
// remembers which wave is in wave RAM so that it is only loaded when it
// changes. If the caller changes wave RAM then ResetWave() must be called
// before the wave channel is unmuted.
//
// StartSong() and Tick() can be called from different goroutines. A Tick()
// that happens while StartSong() is in progress is skipped. Other functions,
// with the exception of the mute functions and ResetWave(), should be called
// from the same goroutine as Tick().
package driver
