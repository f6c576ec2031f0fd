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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/quartet/modalflag"
	"github.com/jetsetilly/quartet/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "song.qrt", "extra"})
	logging := md.AddBool("log", false, "echo log")
	test.ExpectFailure(t, *logging)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, *logging)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "song.qrt")
	test.ExpectEquality(t, md.GetArg(5), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"render", "-seconds", "5", "song.qrt"})
	md.AddSubModes("PLAY", "RENDER")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RENDER")

	md.NewMode()
	seconds := md.AddFloat64("seconds", 10, "length of render")
	out := md.AddString("o", "out.wav", "output file")

	p, err = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *seconds, 5.0)
	test.ExpectEquality(t, *out, "out.wav")
	test.ExpectEquality(t, md.GetArg(0), "song.qrt")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"song.qrt"})
	md.AddSubModes("PLAY", "RENDER")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	// the argument was not consumed
	md.NewMode()
	md.Parse()
	test.ExpectEquality(t, md.GetArg(0), "song.qrt")

	// unknown flags at the top level are passed to the default mode
	md.NewArgs([]string{"-backend", "oto", "song.qrt"})
	md.AddSubModes("PLAY", "RENDER")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Path(), "PLAY")

	md.NewMode()
	backend := md.AddString("backend", "sdl", "audio backend")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *backend, "oto")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddSubModes("PLAY", "RENDER")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -log\n"+
		"    \techo log (default true)\n"+
		"\n"+
		"  available sub-modes: PLAY, RENDER\n"+
		"    default: PLAY\n")

	tw.Clear()
	md.NewArgs([]string{"play", "-help"})
	md.AddSubModes("PLAY", "RENDER")
	md.Parse()
	md.NewMode()
	md.AdditionalHelp("keys: 1-4 toggle mute")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage for PLAY mode\n\nkeys: 1-4 toggle mute\n")

	// a mode with flags has the same heading
	tw.Clear()
	md.NewArgs([]string{"render", "-help"})
	md.AddSubModes("PLAY", "RENDER")
	md.Parse()
	md.NewMode()
	md.AddString("o", "", "wav file")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Usage for RENDER mode\n  -o string\n"))
}
