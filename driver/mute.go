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

// SetMuted sets the mute mask. Bit 0 is Pulse1 and bit 3 is Noise. It is safe
// to call from any goroutine.
//
// The driver does not write to a muted channel from the next tick. When a bit
// is cleared the driver writes to the channel again from its next note
// trigger.
func (d *Driver) SetMuted(mask uint8) {
	d.muted.Store(uint32(mask & 0x0f))
}

// Muted returns the mute mask.
func (d *Driver) Muted() uint8 {
	return uint8(d.muted.Load())
}

// Mute a single channel.
func (d *Driver) Mute(ch ChannelID) {
	d.muted.Or(uint32(ch.Bit()))
}

// Unmute a single channel. If the wave RAM has been changed while the wave
// channel was muted then ResetWave() must be called first.
func (d *Driver) Unmute(ch ChannelID) {
	d.muted.And(^uint32(ch.Bit()))
}

// ResetWave tells the driver that the contents of wave RAM are unknown. The
// wave is reloaded on the next note trigger of the wave channel. It is safe
// to call from any goroutine.
func (d *Driver) ResetWave() {
	d.loadedWave.Store(ResetWaveID)
}

// LoadedWave returns the number of the wave in wave RAM or ResetWaveID.
func (d *Driver) LoadedWave() int {
	return int(d.loadedWave.Load())
}
