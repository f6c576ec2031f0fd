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

// Package apu implements the register sink written to by the driver package.
//
// The Sink interface is the only requirement of the driver. The APU type
// implements the Sink interface with a model of the four channel sound
// hardware: two pulse channels (the first with a frequency sweep), a wave
// channel playing 32 4-bit samples from wave RAM and a noise channel driven by
// a linear feedback shift register.
//
// The APU keeps a copy of every register written to it, which can be
// inspected with Read(), and synthesises mono audio with Render(). The audio
// is suitable for previewing a song. It is not intended to be cycle accurate.
package apu
