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

import (
	"fmt"

	"github.com/jetsetilly/quartet/song"
)

// Effect is the effect column of a pattern cell.
type Effect uint8

// List of effects.
const (
	Arpeggio    Effect = 0x0
	PortaUp     Effect = 0x1
	PortaDown   Effect = 0x2
	TonePorta   Effect = 0x3
	Vibrato     Effect = 0x4
	MasterVol   Effect = 0x5
	CallRoutine Effect = 0x6
	NoteDelay   Effect = 0x7
	Panning     Effect = 0x8
	Timbre      Effect = 0x9
	VolSlide    Effect = 0xa
	PosJump     Effect = 0xb
	SetVol      Effect = 0xc
	PatBreak    Effect = 0xd
	NoteCut     Effect = 0xe
	SetTempo    Effect = 0xf
)

var effectNames = [...]string{
	"arpeggio", "porta up", "porta down", "tone porta",
	"vibrato", "master volume", "call routine", "note delay",
	"panning", "timbre", "volume slide", "position jump",
	"set volume", "pattern break", "note cut", "set tempo",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(e))
}

// Supported returns true if the effect is known to the driver.
func (e Effect) Supported() bool {
	return int(e) < len(effectNames)
}

// first half of a 64 step sine. the second half has the same magnitude with
// the opposite sign
var sineTable = [32]int{
	0, 24, 49, 74, 97, 120, 141, 161, 180, 197, 212, 224, 235, 244, 250, 253,
	255, 253, 250, 244, 235, 224, 212, 197, 180, 161, 141, 120, 97, 74, 49, 24,
}

// vibratoOffset returns the period offset for the phase and depth.
func vibratoOffset(phase uint8, depth uint8) int {
	d := (sineTable[phase&31] * int(depth)) >> 6
	if phase&32 != 0 {
		return -d
	}
	return d
}

// voice is the part of a channel's state that is common to all channel types.
type voice struct {
	// the triggered note and its current period. period differs from the
	// note's period when a portamento is in effect
	note   song.Note
	period int

	// volume in NRx2 format. upper nibble is the volume, lower nibble is the
	// envelope
	volume uint8

	// channel specific. pulse: duty in bits 6-7. wave: wave number. noise:
	// bit 7 for the 7-bit LFSR
	timbre uint8

	instrument int

	// the effect for the current row
	effect Effect
	param  uint8

	// target period for tone portamento
	target int

	vibPhase uint8

	// note has been cut by the note cut effect
	cut bool

	// subpattern of the current instrument, 0 for none. sub is the row that
	// applies to the current tick and subNext is the row for the next tick
	subpattern int
	subNext    int
	sub        song.SubpatternRow
	subValid   bool

	// a note delayed by the note delay effect
	delayed song.Cell
	delay   int

	// note onset on this tick
	trigger bool
}

// output is the result of the effect processor for one tick.
type output struct {
	note   song.Note
	period int
	volume uint8
	timbre uint8
	cut    bool

	// the effect or the subpattern effect is not supported. the output is
	// the same as it was on the previous tick
	unsupported    bool
	subUnsupported bool
}

// process is the effect processor. it is a pure function of the voice and the
// tick within the row.
//
// tick zero is the row tick. portamento, vibrato phase and volume slides
// advance on every other tick of the row. arpeggio applies on every tick.
func process(v voice, tick int) (voice, output) {
	out := output{
		note:   v.note,
		period: v.period,
	}

	// subpattern row. the effect is applied immediately
	if v.subValid {
		switch Effect(v.sub.Effect) {
		case Arpeggio:
			if v.sub.Param != 0 {
				out.subUnsupported = true
			}
		case Timbre:
			v.timbre = v.sub.Param
		case SetVol:
			v.volume = v.sub.Param
		default:
			out.subUnsupported = true
		}
	}

	semitones := 0
	if v.subValid {
		semitones = int(v.sub.Offset)
	}

	switch v.effect {
	case Arpeggio:
		if v.param != 0 {
			switch tick % 3 {
			case 1:
				semitones += int(v.param >> 4)
			case 2:
				semitones += int(v.param & 0x0f)
			}
		}

	case PortaUp:
		if tick > 0 {
			v.period = clampPeriod(v.period + int(v.param))
		}

	case PortaDown:
		if tick > 0 {
			v.period = clampPeriod(v.period - int(v.param))
		}

	case TonePorta:
		if tick > 0 {
			if v.period < v.target {
				v.period += int(v.param)
				if v.period > v.target {
					v.period = v.target
				}
			} else if v.period > v.target {
				v.period -= int(v.param)
				if v.period < v.target {
					v.period = v.target
				}
			}
		}

	case Vibrato:
		if tick > 0 {
			v.vibPhase = (v.vibPhase + v.param>>4) & 63
		}

	case VolSlide:
		if tick > 0 {
			vol := int(v.volume>>4) + int(v.param>>4) - int(v.param&0x0f)
			if vol < 0 {
				vol = 0
			} else if vol > 15 {
				vol = 15
			}

			// the envelope is cleared so that the volume holds
			v.volume = uint8(vol) << 4
		}

	case SetVol:
		if tick == 0 {
			v.volume = v.param
		}

	case Timbre:
		if tick == 0 {
			v.timbre = v.param
		}

	case NoteCut:
		if tick == int(v.param) {
			v.cut = true
		}

	case MasterVol, CallRoutine, NoteDelay, Panning, PosJump, PatBreak, SetTempo:
		// handled by the driver on the row tick

	default:
		out.unsupported = true
	}

	out.note = v.note.Offset(semitones)
	out.period = v.period
	if semitones != 0 {
		out.period += NotePeriod(out.note) - NotePeriod(v.note)
	}
	if v.effect == Vibrato {
		out.period += vibratoOffset(v.vibPhase, v.param&0x0f)
	}
	out.period = clampPeriod(out.period)

	out.volume = v.volume
	out.timbre = v.timbre
	out.cut = v.cut

	return v, out
}
