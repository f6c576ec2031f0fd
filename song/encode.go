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

import (
	"fmt"

	"github.com/jetsetilly/quartet/curated"
)

// Order is one entry of the order matrix: the pattern number for each of the
// four channels.
type Order [NumChannels]uint8

// Pattern is 64 rows for a single channel.
type Pattern [PatternRows]Cell

// Subpattern is 32 rows of an instrument subpattern.
type Subpattern [SubpatternRows]SubpatternRow

// Data describes a song in Go terms. It can be turned into a blob with
// Encode(). References between sections are not checked.
type Data struct {
	Tempo            uint8
	TimerDivider     uint8
	Orders           []Order
	Patterns         []Pattern
	DutyInstruments  []DutyInstrument
	WaveInstruments  []WaveInstrument
	NoiseInstruments []NoiseInstrument
	Waves            []Wave
	Subpatterns      []Subpattern
}

// NewPattern returns a pattern in which every cell is empty.
func NewPattern() Pattern {
	var p Pattern
	for i := range p {
		p[i] = EmptyCell
	}
	return p
}

// Encode the song description as a blob that can be used with New().
func (d *Data) Encode() ([]byte, error) {
	if d.Tempo == 0 {
		return nil, curated.Errorf(BadData, "tempo is zero")
	}

	count := func(name string, n int, max int) error {
		if n > max {
			return curated.Errorf(BadData, fmt.Sprintf("too many %s (%d)", name, n))
		}
		return nil
	}

	if len(d.Orders) == 0 {
		return nil, curated.Errorf(BadData, "no orders")
	}
	if err := count("orders", len(d.Orders), 255); err != nil {
		return nil, err
	}
	if err := count("patterns", len(d.Patterns), 255); err != nil {
		return nil, err
	}
	if err := count("duty instruments", len(d.DutyInstruments), MaxInstruments); err != nil {
		return nil, err
	}
	if err := count("wave instruments", len(d.WaveInstruments), MaxInstruments); err != nil {
		return nil, err
	}
	if err := count("noise instruments", len(d.NoiseInstruments), MaxInstruments); err != nil {
		return nil, err
	}
	if err := count("waves", len(d.Waves), MaxWaves); err != nil {
		return nil, err
	}
	if err := count("subpatterns", len(d.Subpatterns), 255); err != nil {
		return nil, err
	}

	b := make([]byte, HeaderSize, HeaderSize+
		len(d.Orders)*orderSize+
		len(d.Patterns)*patternSize+
		len(d.DutyInstruments)*dutyInstSize+
		len(d.WaveInstruments)*waveInstSize+
		len(d.NoiseInstruments)*noiseInstSize+
		len(d.Waves)*WaveSize+
		len(d.Subpatterns)*subpatternSize)

	copy(b, Magic)
	b[hdrVersion] = Version
	b[hdrTempo] = d.Tempo
	b[hdrTimerDivider] = d.TimerDivider
	b[hdrOrders] = uint8(len(d.Orders))
	b[hdrPatterns] = uint8(len(d.Patterns))
	b[hdrDutyInsts] = uint8(len(d.DutyInstruments))
	b[hdrWaveInsts] = uint8(len(d.WaveInstruments))
	b[hdrNoiseInsts] = uint8(len(d.NoiseInstruments))
	b[hdrWaves] = uint8(len(d.Waves))
	b[hdrSubpatterns] = uint8(len(d.Subpatterns))

	for _, o := range d.Orders {
		b = append(b, o[:]...)
	}
	for _, p := range d.Patterns {
		for _, c := range p {
			b = append(b, uint8(c.Note), c.Instrument, c.Effect, c.Param)
		}
	}
	for _, ins := range d.DutyInstruments {
		b = append(b, ins.Sweep, ins.DutyLength, ins.Envelope, ins.Subpattern, ins.Flags, 0)
	}
	for _, ins := range d.WaveInstruments {
		b = append(b, ins.Length, ins.OutputLevel, ins.Subpattern, ins.Flags, ins.Wave, 0)
	}
	for _, ins := range d.NoiseInstruments {
		b = append(b, ins.Envelope, ins.Subpattern, ins.Flags, 0)
	}
	for _, w := range d.Waves {
		b = append(b, w[:]...)
	}
	for _, sp := range d.Subpatterns {
		for _, r := range sp {
			b = append(b, uint8(r.Offset), r.Next, r.Effect, r.Param)
		}
	}

	return b, nil
}
