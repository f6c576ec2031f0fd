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

package song

// Magic is the first three bytes of every song blob.
const Magic = "QRT"

// Version is the only supported version of the format.
const Version = 1

// Size of the header in bytes.
const HeaderSize = 16

// Fixed dimensions of the format.
const (
	NumChannels       = 4
	PatternRows       = 64
	SubpatternRows    = 32
	MaxInstruments    = 15
	MaxWaves          = 16
	WaveSize          = 16
	cellSize          = 4
	orderSize         = NumChannels
	patternSize       = PatternRows * cellSize
	dutyInstSize      = 6
	waveInstSize      = 6
	noiseInstSize     = 4
	subpatternRowSize = 4
	subpatternSize    = SubpatternRows * subpatternRowSize
)

// offsets into the header.
const (
	hdrVersion       = 3
	hdrTempo         = 4
	hdrTimerDivider  = 5
	hdrOrders        = 6
	hdrPatterns      = 7
	hdrDutyInsts     = 8
	hdrWaveInsts     = 9
	hdrNoiseInsts    = 10
	hdrWaves         = 11
	hdrSubpatterns   = 12
	hdrReservedStart = 13
)

// Cell is a single row of a pattern for one channel. The zero value is not an
// empty cell: note zero is C-3 and will trigger a note. Start from EmptyCell or
// EffectCell() instead.
type Cell struct {
	Note       Note
	Instrument uint8 // 0 is no instrument, otherwise 1 to 15
	Effect     uint8
	Param      uint8
}

// EmptyCell is a cell that does nothing.
var EmptyCell = Cell{Note: NoNote}

// EffectCell returns a cell with an effect and no note or instrument.
func EffectCell(effect uint8, param uint8) Cell {
	return Cell{Note: NoNote, Effect: effect, Param: param}
}

// IsEmpty returns true if the cell has no note, no instrument and no effect.
func (c Cell) IsEmpty() bool {
	return c.Note == NoNote && c.Instrument == 0 && c.Effect == 0 && c.Param == 0
}

// Instrument flag bits.
const (
	FlagLengthEnable = 0x40
	FlagNoise7Bit    = 0x80
	noiseLengthMask  = 0x3f
)

// DutyInstrument is used by the two pulse channels.
type DutyInstrument struct {
	Sweep      uint8 // NR10 format. only effective on pulse 1
	DutyLength uint8 // NRx1 format
	Envelope   uint8 // NRx2 format
	Subpattern uint8 // 0 is none, otherwise 1-based
	Flags      uint8
}

// WaveInstrument is used by the wave channel.
type WaveInstrument struct {
	Length      uint8 // NR31 format
	OutputLevel uint8 // NR32 format
	Subpattern  uint8
	Flags       uint8
	Wave        uint8
}

// NoiseInstrument is used by the noise channel.
type NoiseInstrument struct {
	Envelope   uint8 // NR42 format
	Subpattern uint8
	Flags      uint8 // bit 7 is 7-bit LFSR, bit 6 is length enable, bits 0-5 length
}

// Length returns the NR41 length value of the instrument.
func (ins NoiseInstrument) Length() uint8 {
	return ins.Flags & noiseLengthMask
}

// Wave is 32 packed 4-bit samples, high nibble first.
type Wave [WaveSize]uint8

// SubpatternRow is a single row of an instrument subpattern. Subpattern rows
// are applied one per tick.
type SubpatternRow struct {
	Offset int8  // semitones relative to the triggered note
	Next   uint8 // index of the next row to apply
	Effect uint8
	Param  uint8
}
