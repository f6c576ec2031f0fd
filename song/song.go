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
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/jetsetilly/quartet/curated"
)

// Header is the decoded song header.
type Header struct {
	Version          uint8
	Tempo            uint8
	TimerDivider     uint8
	Orders           int
	Patterns         int
	DutyInstruments  int
	WaveInstruments  int
	NoiseInstruments int
	Waves            int
	Subpatterns      int
}

func (h Header) String() string {
	return fmt.Sprintf("v%d tempo=%d divider=%d orders=%d patterns=%d instruments=%d/%d/%d waves=%d subpatterns=%d",
		h.Version, h.Tempo, h.TimerDivider, h.Orders, h.Patterns,
		h.DutyInstruments, h.WaveInstruments, h.NoiseInstruments,
		h.Waves, h.Subpatterns)
}

// Song is a parsed song blob. The underlying data is never changed.
type Song struct {
	Header Header

	data []byte

	// non-nil if the song was loaded with Load()
	mm mmap.MMap

	// section offsets
	orders      int
	patterns    int
	dutyInsts   int
	waveInsts   int
	noiseInsts  int
	waves       int
	subpatterns int
}

// New parses a song blob. The data is borrowed and must not be changed by the
// caller while the Song is in use.
func New(data []byte) (*Song, error) {
	if len(data) < HeaderSize {
		return nil, curated.Errorf(Truncated, len(data), HeaderSize)
	}

	if string(data[:len(Magic)]) != Magic {
		return nil, curated.Errorf(BadMagic, data[:len(Magic)])
	}

	if data[hdrVersion] != Version {
		return nil, curated.Errorf(BadVersion, data[hdrVersion])
	}

	s := &Song{
		data: data,
		Header: Header{
			Version:          data[hdrVersion],
			Tempo:            data[hdrTempo],
			TimerDivider:     data[hdrTimerDivider],
			Orders:           int(data[hdrOrders]),
			Patterns:         int(data[hdrPatterns]),
			DutyInstruments:  int(data[hdrDutyInsts]),
			WaveInstruments:  int(data[hdrWaveInsts]),
			NoiseInstruments: int(data[hdrNoiseInsts]),
			Waves:            int(data[hdrWaves]),
			Subpatterns:      int(data[hdrSubpatterns]),
		},
	}

	if err := s.Header.check(); err != nil {
		return nil, err
	}

	for _, b := range data[hdrReservedStart:HeaderSize] {
		if b != 0 {
			return nil, curated.Errorf(BadHeader, "reserved bytes are not zero")
		}
	}

	// section offsets
	s.orders = HeaderSize
	s.patterns = s.orders + s.Header.Orders*orderSize
	s.dutyInsts = s.patterns + s.Header.Patterns*patternSize
	s.waveInsts = s.dutyInsts + s.Header.DutyInstruments*dutyInstSize
	s.noiseInsts = s.waveInsts + s.Header.WaveInstruments*waveInstSize
	s.waves = s.noiseInsts + s.Header.NoiseInstruments*noiseInstSize
	s.subpatterns = s.waves + s.Header.Waves*WaveSize
	end := s.subpatterns + s.Header.Subpatterns*subpatternSize

	if len(data) < end {
		return nil, curated.Errorf(Truncated, len(data), end)
	}
	if len(data) > end {
		return nil, curated.Errorf(Oversized, len(data), end)
	}

	return s, nil
}

func (h Header) check() error {
	if h.Tempo == 0 {
		return curated.Errorf(BadHeader, "tempo is zero")
	}
	if h.Orders == 0 {
		return curated.Errorf(BadHeader, "no orders")
	}
	if h.DutyInstruments > MaxInstruments {
		return curated.Errorf(BadHeader, "too many duty instruments")
	}
	if h.WaveInstruments > MaxInstruments {
		return curated.Errorf(BadHeader, "too many wave instruments")
	}
	if h.NoiseInstruments > MaxInstruments {
		return curated.Errorf(BadHeader, "too many noise instruments")
	}
	if h.Waves > MaxWaves {
		return curated.Errorf(BadHeader, "too many waves")
	}
	return nil
}

// Load memory maps the named file and parses it. The Close() function should
// be called when the song is no longer required.
func Load(path string) (*Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	// a zero length file cannot be mapped
	if fi.Size() < HeaderSize {
		return nil, curated.Errorf(Truncated, fi.Size(), HeaderSize)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	s, err := New(mm)
	if err != nil {
		mm.Unmap()
		return nil, err
	}
	s.mm = mm

	return s, nil
}

// Close releases the memory mapping of a song created by Load(). It does
// nothing for songs created with New(). The song must not be used after it
// has been closed.
func (s *Song) Close() error {
	if s.mm == nil {
		return nil
	}
	err := s.mm.Unmap()
	s.mm = nil
	s.data = nil
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	return nil
}

// Bytes returns the underlying blob. It must not be changed.
func (s *Song) Bytes() []byte {
	return s.data
}

// Order returns the pattern number for the channel at the order position.
func (s *Song) Order(order int, channel int) (int, bool) {
	if order < 0 || order >= s.Header.Orders || channel < 0 || channel >= NumChannels {
		return 0, false
	}
	return int(s.data[s.orders+order*orderSize+channel]), true
}

// Cell returns the cell at the row of the pattern. An out of range pattern
// or row results in the empty cell.
func (s *Song) Cell(pattern int, row int) (Cell, bool) {
	if pattern < 0 || pattern >= s.Header.Patterns || row < 0 || row >= PatternRows {
		return EmptyCell, false
	}
	o := s.patterns + pattern*patternSize + row*cellSize
	return Cell{
		Note:       Note(s.data[o]),
		Instrument: s.data[o+1],
		Effect:     s.data[o+2],
		Param:      s.data[o+3],
	}, true
}

// DutyInstrument returns the 1-based duty instrument.
func (s *Song) DutyInstrument(n int) (DutyInstrument, bool) {
	if n < 1 || n > s.Header.DutyInstruments {
		return DutyInstrument{}, false
	}
	o := s.dutyInsts + (n-1)*dutyInstSize
	return DutyInstrument{
		Sweep:      s.data[o],
		DutyLength: s.data[o+1],
		Envelope:   s.data[o+2],
		Subpattern: s.data[o+3],
		Flags:      s.data[o+4],
	}, true
}

// WaveInstrument returns the 1-based wave instrument.
func (s *Song) WaveInstrument(n int) (WaveInstrument, bool) {
	if n < 1 || n > s.Header.WaveInstruments {
		return WaveInstrument{}, false
	}
	o := s.waveInsts + (n-1)*waveInstSize
	return WaveInstrument{
		Length:      s.data[o],
		OutputLevel: s.data[o+1],
		Subpattern:  s.data[o+2],
		Flags:       s.data[o+3],
		Wave:        s.data[o+4],
	}, true
}

// NoiseInstrument returns the 1-based noise instrument.
func (s *Song) NoiseInstrument(n int) (NoiseInstrument, bool) {
	if n < 1 || n > s.Header.NoiseInstruments {
		return NoiseInstrument{}, false
	}
	o := s.noiseInsts + (n-1)*noiseInstSize
	return NoiseInstrument{
		Envelope:   s.data[o],
		Subpattern: s.data[o+1],
		Flags:      s.data[o+2],
	}, true
}

// Wave returns the 0-based wave.
func (s *Song) Wave(id int) (Wave, bool) {
	var w Wave
	if id < 0 || id >= s.Header.Waves {
		return w, false
	}
	copy(w[:], s.data[s.waves+id*WaveSize:])
	return w, true
}

// SubpatternRow returns the row of the 1-based subpattern.
func (s *Song) SubpatternRow(n int, row int) (SubpatternRow, bool) {
	if n < 1 || n > s.Header.Subpatterns || row < 0 || row >= SubpatternRows {
		return SubpatternRow{}, false
	}
	o := s.subpatterns + (n-1)*subpatternSize + row*subpatternRowSize
	return SubpatternRow{
		Offset: int8(s.data[o]),
		Next:   s.data[o+1],
		Effect: s.data[o+2],
		Param:  s.data[o+3],
	}, true
}
