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

package song_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/song"
	"github.com/jetsetilly/quartet/test"
)

func twoPatternSong() *song.Data {
	p0 := song.NewPattern()
	p0[0] = song.Cell{Note: 12, Instrument: 1}
	p1 := song.NewPattern()
	p1[5] = song.Cell{Note: 24, Instrument: 1, Effect: 0x0c, Param: 0xf0}

	return &song.Data{
		Tempo:    6,
		Orders:   []song.Order{{0, 1, 1, 1}, {1, 1, 1, 1}},
		Patterns: []song.Pattern{p0, p1},
		DutyInstruments: []song.DutyInstrument{
			{DutyLength: 0x80, Envelope: 0xf0},
		},
		WaveInstruments: []song.WaveInstrument{
			{OutputLevel: 0x20, Wave: 0},
		},
		NoiseInstruments: []song.NoiseInstrument{
			{Envelope: 0xf1, Flags: song.FlagNoise7Bit},
		},
		Waves: []song.Wave{
			{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10},
		},
		Subpatterns: []song.Subpattern{
			{{Offset: -12, Next: 1}, {Offset: 0, Next: 0, Effect: 0x09, Param: 0x40}},
		},
	}
}

func TestEncodeAndParse(t *testing.T) {
	blob, err := twoPatternSong().Encode()
	test.DemandSuccess(t, err)

	s, err := song.New(blob)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Header.Tempo, uint8(6))
	test.ExpectEquality(t, s.Header.Orders, 2)
	test.ExpectEquality(t, s.Header.Patterns, 2)

	p, ok := s.Order(1, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, 1)

	c, ok := s.Cell(1, 5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, song.Cell{Note: 24, Instrument: 1, Effect: 0x0c, Param: 0xf0})

	ins, ok := s.DutyInstrument(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ins.Envelope, uint8(0xf0))

	nins, ok := s.NoiseInstrument(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, nins.Flags&song.FlagNoise7Bit, uint8(song.FlagNoise7Bit))

	w, ok := s.Wave(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w[15], uint8(0x10))

	r, ok := s.SubpatternRow(1, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r.Offset, int8(-12))
	test.ExpectEquality(t, r.Next, uint8(1))
}

func TestOutOfRange(t *testing.T) {
	blob, err := twoPatternSong().Encode()
	test.DemandSuccess(t, err)
	s, err := song.New(blob)
	test.DemandSuccess(t, err)

	_, ok := s.Order(2, 0)
	test.ExpectFailure(t, ok)
	_, ok = s.Order(0, 4)
	test.ExpectFailure(t, ok)

	c, ok := s.Cell(2, 0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c, song.EmptyCell)

	_, ok = s.DutyInstrument(0)
	test.ExpectFailure(t, ok)
	_, ok = s.DutyInstrument(2)
	test.ExpectFailure(t, ok)
	_, ok = s.WaveInstrument(15)
	test.ExpectFailure(t, ok)
	_, ok = s.Wave(1)
	test.ExpectFailure(t, ok)
	_, ok = s.SubpatternRow(1, 32)
	test.ExpectFailure(t, ok)
	_, ok = s.SubpatternRow(2, 0)
	test.ExpectFailure(t, ok)
}

func TestReader(t *testing.T) {
	d := twoPatternSong()

	// second order refers to a pattern that does not exist on channel 2
	d.Orders[1][1] = 200

	blob, err := d.Encode()
	test.DemandSuccess(t, err)
	s, err := song.New(blob)
	test.DemandSuccess(t, err)

	r := song.NewReader(s)
	c, ok := r.Cell(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Note, song.Note(12))

	for i := 0; i < song.PatternRows-1; i++ {
		test.ExpectFailure(t, r.Advance())
	}
	order, row := r.Position()
	test.ExpectEquality(t, order, 0)
	test.ExpectEquality(t, row, 63)

	test.ExpectFailure(t, r.Advance())
	order, row = r.Position()
	test.ExpectEquality(t, order, 1)
	test.ExpectEquality(t, row, 0)

	c, ok = r.Cell(1)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, c.IsEmpty())

	test.ExpectEquality(t, r.NextOrder(), 0)

	test.ExpectFailure(t, r.Jump(5, 10))
	order, row = r.Position()
	test.ExpectEquality(t, order, 0)
	test.ExpectEquality(t, row, 10)

	test.ExpectFailure(t, r.Jump(1, 64))
	order, row = r.Position()
	test.ExpectEquality(t, order, 1)
	test.ExpectEquality(t, row, 0)

	test.ExpectSuccess(t, r.Jump(1, 63))
	test.ExpectSuccess(t, r.Advance())
}

func TestBadBlobs(t *testing.T) {
	blob, err := twoPatternSong().Encode()
	test.DemandSuccess(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		b := make([]byte, len(blob))
		copy(b, blob)
		return f(b)
	}

	_, err = song.New(blob[:10])
	test.ExpectSuccess(t, curated.Is(err, song.Truncated))

	_, err = song.New(blob[:len(blob)-1])
	test.ExpectSuccess(t, curated.Is(err, song.Truncated))

	_, err = song.New(append(corrupt(func(b []byte) []byte { return b }), 0))
	test.ExpectSuccess(t, curated.Is(err, song.Oversized))

	_, err = song.New(corrupt(func(b []byte) []byte { b[0] = 'X'; return b }))
	test.ExpectSuccess(t, curated.Is(err, song.BadMagic))

	_, err = song.New(corrupt(func(b []byte) []byte { b[3] = 2; return b }))
	test.ExpectSuccess(t, curated.Is(err, song.BadVersion))

	_, err = song.New(corrupt(func(b []byte) []byte { b[4] = 0; return b }))
	test.ExpectSuccess(t, curated.Is(err, song.BadHeader))

	_, err = song.New(corrupt(func(b []byte) []byte { b[6] = 0; return b }))
	test.ExpectSuccess(t, curated.Is(err, song.BadHeader))

	_, err = song.New(corrupt(func(b []byte) []byte { b[11] = 17; return b }))
	test.ExpectSuccess(t, curated.Is(err, song.BadHeader))

	_, err = (&song.Data{Tempo: 6}).Encode()
	test.ExpectSuccess(t, curated.Is(err, song.BadData))
}

func TestLoad(t *testing.T) {
	blob, err := twoPatternSong().Encode()
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "test.qrt")
	test.DemandSuccess(t, os.WriteFile(fn, blob, 0o644))

	s, err := song.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Header.Patterns, 2)
	test.ExpectEquality(t, len(s.Bytes()), len(blob))
	test.ExpectSuccess(t, s.Close())

	empty := filepath.Join(t.TempDir(), "empty.qrt")
	test.DemandSuccess(t, os.WriteFile(empty, nil, 0o644))
	_, err = song.Load(empty)
	test.ExpectSuccess(t, curated.Is(err, song.Truncated))

	_, err = song.Load(filepath.Join(t.TempDir(), "missing.qrt"))
	test.ExpectSuccess(t, curated.Is(err, song.LoadError))
}

func TestNoteNames(t *testing.T) {
	test.ExpectEquality(t, song.Note(0).String(), "C-3")
	test.ExpectEquality(t, song.Note(12).String(), "C-4")
	test.ExpectEquality(t, song.Note(13).String(), "C#4")
	test.ExpectEquality(t, song.LastNote.String(), "B-8")
	test.ExpectEquality(t, song.NoNote.String(), "---")
	test.ExpectEquality(t, song.Note(80).String(), "???")

	n, ok := song.ParseNote("F#5")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n.String(), "F#5")
	_, ok = song.ParseNote("H-4")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, song.Note(2).Offset(-12), song.Note(0))
	test.ExpectEquality(t, song.Note(70).Offset(5), song.LastNote)
}

func TestDemo(t *testing.T) {
	blob, err := song.Demo().Encode()
	test.DemandSuccess(t, err)

	s, err := song.New(blob)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Header.Orders, 2)
	test.ExpectEquality(t, s.Header.Waves, 2)

	// every reference in the demo is in range
	r := song.NewReader(s)
	for i := 0; i < s.Header.Orders*song.PatternRows; i++ {
		for ch := 0; ch < song.NumChannels; ch++ {
			c, ok := r.Cell(ch)
			test.DemandSuccess(t, ok)
			if c.Note != song.NoNote {
				test.ExpectSuccess(t, c.Note.Valid())
			}
		}
		r.Advance()
	}
}

func TestEffectCell(t *testing.T) {
	c := song.EffectCell(0x9, 0xc0)
	test.ExpectEquality(t, c.Note, song.NoNote)
	test.ExpectEquality(t, c.Instrument, uint8(0))
	test.ExpectFailure(t, c.IsEmpty())
	test.ExpectSuccess(t, song.EffectCell(0, 0).IsEmpty())

	// the zero cell is a note
	test.ExpectFailure(t, song.Cell{}.IsEmpty())
	test.ExpectEquality(t, song.Cell{}.Note.String(), "C-3")
}
