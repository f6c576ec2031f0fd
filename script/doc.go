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

// Package script runs Lua scenarios alongside the driver. A scenario borrows
// channels from the driver by muting them, writes to the sound registers
// directly (a sound effect for example), and then hands the channels back.
//
// Functions available to the Lua script:
//
//	at(frame, fn)        call fn on the given frame (tick) of the song
//	after(frames, fn)    call fn the given number of frames from now
//	frame()              the current frame
//	position()           the current order, row and tick
//	mute(ch)             stop the driver writing to channel 1 to 4
//	unmute(ch)           give the channel back to the driver
//	reset_wave()         tell the driver that wave RAM has been changed
//	write(reg, value)    write to a sound register. eg. write(0xff12, 0xf0)
//	wave(t)              write a table of 16 bytes to wave RAM
//	routine(fn)          fn(ch, param) is called by the 6xx effect
//	log(msg)             add an entry to the central log
//
// The wave() function calls reset_wave() itself. Writing to wave RAM with
// write() does not.
//
// Errors in a scenario will result in a log entry. The scenario continues
// with the next scheduled function.
//
// An example scenario that plays a short sound effect on the noise channel:
//
//	at(120, function()
//		mute(4)
//		write(0xff21, 0xf1)
//		write(0xff22, 0x55)
//		write(0xff23, 0x80)
//	end)
//
//	at(150, function()
//		unmute(4)
//	end)
package script
