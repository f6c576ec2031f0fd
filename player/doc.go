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

// Package player runs a driver.Driver at the rate given by the song header and
// renders the result to an Output. The Output is usually a live audio device
// (sdlaudio or otoaudio) which blocks when it has enough audio queued, or a
// wavwriter.WavWriter which never blocks.
//
// The driver and the APU are only ever touched by the goroutine that calls
// Run() or Step(). Other goroutines use BorrowDriver() and BorrowAPU() to
// access them safely. Muting and resetting the wave cache do not need to be
// borrowed because the driver allows them from any goroutine.
package player
