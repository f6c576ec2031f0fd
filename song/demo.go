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

// Demo returns a short song that uses all four channels and most effects. It
// is used by the DEMO mode of the quartet command and by tests that need
// something to play.
func Demo() *Data {
	n := func(s string) Note {
		note, ok := ParseNote(s)
		if !ok {
			return NoNote
		}
		return note
	}

	lead := func(notes []string, effect uint8, param uint8) Pattern {
		p := NewPattern()
		for i, s := range notes {
			if s == "" {
				continue
			}
			p[i*4] = Cell{Note: n(s), Instrument: 1, Effect: effect, Param: param}
		}
		return p
	}

	// melody. the first half with vibrato, the second half with a volume slide
	// and a portamento at the end of the phrase
	melodyA := lead([]string{
		"C-5", "E-5", "G-5", "C-6", "B-5", "G-5", "D-5", "",
		"A-4", "C-5", "E-5", "A-5", "G-5", "E-5", "C-5", "",
	}, 0x4, 0x32)
	melodyB := lead([]string{
		"F-4", "A-4", "C-5", "F-5", "E-5", "C-5", "A-4", "",
		"G-4", "B-4", "D-5", "G-5", "F-5", "D-5", "B-4", "",
	}, 0xa, 0x01)
	melodyB[60] = Cell{Note: NoNote, Effect: 0x1, Param: 0x08}

	// arpeggiated chords with duty cycling
	chords := NewPattern()
	for i, c := range []struct {
		root  string
		chord uint8
	}{{"C-4", 0x47}, {"A-3", 0x37}, {"F-3", 0x47}, {"G-3", 0x47}} {
		chords[i*16] = Cell{Note: n(c.root), Instrument: 2, Effect: 0x0, Param: c.chord}
		chords[i*16+8] = Cell{Note: NoNote, Effect: 0xc, Param: 0x80}
	}

	// bass on the wave channel. the second half switches waves with 9xx
	bass := NewPattern()
	for i, s := range []string{"C-3", "C-3", "A-3", "A-3", "F-3", "F-3", "G-3", "G-3"} {
		bass[i*8] = Cell{Note: n(s), Instrument: 1, Effect: 0x0, Param: 0x00}
	}
	bass[32].Effect = 0x9
	bass[32].Param = 0x01
	bass[56] = Cell{Note: n("G-3"), Instrument: 1, Effect: 0x3, Param: 0x10}

	// kick and snare. the snare is cut short
	drums := NewPattern()
	for r := 0; r < PatternRows; r += 8 {
		drums[r] = Cell{Note: n("C-3"), Instrument: 1}
		drums[r+4] = Cell{Note: n("C-6"), Instrument: 2, Effect: 0xe, Param: 0x03}
	}
	drums[62] = Cell{Note: n("C-7"), Instrument: 2, Effect: 0x7, Param: 0x03}

	var dutyCycle Subpattern
	for i := range dutyCycle {
		dutyCycle[i] = SubpatternRow{Next: uint8((i + 1) % 4), Effect: 0x9, Param: uint8(i%4) << 6}
	}

	var square, saw Wave
	for i := range square {
		if i < WaveSize/2 {
			square[i] = 0xff
		}
		saw[i] = uint8(i)<<4 | uint8(i)
	}

	return &Data{
		Tempo: 6,
		Orders: []Order{
			{0, 2, 3, 4},
			{1, 2, 3, 4},
		},
		Patterns: []Pattern{melodyA, melodyB, chords, bass, drums},
		DutyInstruments: []DutyInstrument{
			{DutyLength: 0x80, Envelope: 0xc3},
			{DutyLength: 0x40, Envelope: 0x80, Subpattern: 1},
		},
		WaveInstruments: []WaveInstrument{
			{OutputLevel: 0x20, Wave: 0},
		},
		NoiseInstruments: []NoiseInstrument{
			{Envelope: 0xf2},
			{Envelope: 0xa1, Flags: FlagNoise7Bit},
		},
		Waves:       []Wave{square, saw},
		Subpatterns: []Subpattern{dutyCycle},
	}
}
