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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/quartet/prefs"
	"github.com/jetsetilly/quartet/test"
)

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var rate prefs.Int
	var vol prefs.Float
	var backend prefs.String
	var interp prefs.Bool

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("player.sampleRate", &rate))
	test.DemandSuccess(t, dsk.Add("player.volume", &vol))
	test.DemandSuccess(t, dsk.Add("player.backend", &backend))
	test.DemandSuccess(t, dsk.Add("player.interpolate", &interp))

	test.ExpectSuccess(t, rate.Set(48000))
	test.ExpectSuccess(t, vol.Set(0.5))
	test.ExpectSuccess(t, backend.Set("oto"))
	test.ExpectSuccess(t, interp.Set(true))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "player.sampleRate :: 48000\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "player.volume :: 0.5\n"))

	var rate2 prefs.Int
	var backend2 prefs.String
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk2.Add("player.sampleRate", &rate2))
	test.DemandSuccess(t, dsk2.Add("player.backend", &backend2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, rate2.Get().(int), 48000)
	test.ExpectEquality(t, backend2.String(), "oto")

	// saving dsk2 must not lose the keys it doesn't know about
	test.DemandSuccess(t, dsk2.Save())
	data, err = os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "player.interpolate :: true\n"))
}

func TestBadValues(t *testing.T) {
	var i prefs.Int
	test.ExpectFailure(t, i.Set("forty"))
	test.ExpectFailure(t, i.Set(1.5))

	var f prefs.Float
	test.ExpectFailure(t, f.Set("x"))

	var b prefs.Bool
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("nope"))
	test.ExpectEquality(t, b.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var rate prefs.Int
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("player.sampleRate", &rate))

	prefs.PushCommandLineStack("player.sampleRate::22050; player.unknown::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, rate.Get().(int), 22050)

	// the unknown key was never used
	test.ExpectEquality(t, prefs.PopCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), 0)
}

func TestHookPost(t *testing.T) {
	var v prefs.Float
	var seen float64
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(float64)
		return nil
	})
	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectEquality(t, seen, 0.25)
}
