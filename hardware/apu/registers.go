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

package apu

import "fmt"

// Register is the address of a sound register.
type Register uint16

// List of sound registers.
const (
	NR10 Register = 0xff10 + iota
	NR11
	NR12
	NR13
	NR14
	nr15
	NR21
	NR22
	NR23
	NR24
	NR30
	NR31
	NR32
	NR33
	NR34
	nr35
	NR41
	NR42
	NR43
	NR44
	NR50
	NR51
	NR52
)

// The 16 bytes of wave RAM.
const (
	WaveRAM    Register = 0xff30
	WaveRAMEnd Register = 0xff3f
)

// WaveRAMSize is the number of bytes in wave RAM.
const WaveRAMSize = int(WaveRAMEnd-WaveRAM) + 1

// the number of addresses covered by the register file.
const fileSize = int(WaveRAMEnd-NR10) + 1

var registerNames = map[Register]string{
	NR10: "NR10", NR11: "NR11", NR12: "NR12", NR13: "NR13", NR14: "NR14",
	NR21: "NR21", NR22: "NR22", NR23: "NR23", NR24: "NR24",
	NR30: "NR30", NR31: "NR31", NR32: "NR32", NR33: "NR33", NR34: "NR34",
	NR41: "NR41", NR42: "NR42", NR43: "NR43", NR44: "NR44",
	NR50: "NR50", NR51: "NR51", NR52: "NR52",
}

func (r Register) String() string {
	if r.IsWaveRAM() {
		return fmt.Sprintf("WAV%X", int(r-WaveRAM))
	}
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("%#04x", uint16(r))
}

// IsWaveRAM returns true if the register is one of the wave RAM bytes.
func (r Register) IsWaveRAM() bool {
	return r >= WaveRAM && r <= WaveRAMEnd
}

// Valid returns true if the register is a sound register or a wave RAM byte.
func (r Register) Valid() bool {
	if r.IsWaveRAM() {
		return true
	}
	_, ok := registerNames[r]
	return ok
}

// Channel returns the channel that owns the register. Wave RAM belongs to the
// wave channel (2). Registers that are shared by all channels return -1.
func (r Register) Channel() int {
	switch {
	case r >= NR10 && r <= NR14:
		return 0
	case r >= NR21 && r <= NR24:
		return 1
	case r >= NR30 && r <= NR34:
		return 2
	case r >= NR41 && r <= NR44:
		return 3
	case r.IsWaveRAM():
		return 2
	}
	return -1
}

// ChannelRegisters lists the five register slots of a channel, in the order
// sweep/DAC, length/duty, envelope/level, period low, period high/control.
// Channels without a register in a slot have a zero value.
var ChannelRegisters = [4][5]Register{
	{NR10, NR11, NR12, NR13, NR14},
	{0, NR21, NR22, NR23, NR24},
	{NR30, NR31, NR32, NR33, NR34},
	{0, NR41, NR42, NR43, NR44},
}

// Bits of the NRx4 registers.
const (
	Trigger      = 0x80
	LengthEnable = 0x40
)

// Sink is the interface to the sound registers. It is the only output of the
// driver.
type Sink interface {
	Write(reg Register, data uint8)
}

// Reader is implemented by sinks that can report the last value written to a
// register.
type Reader interface {
	Read(reg Register) uint8
}
