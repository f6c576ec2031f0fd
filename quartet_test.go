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

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/quartet/modalflag"
	"github.com/jetsetilly/quartet/prefs"
	"github.com/jetsetilly/quartet/test"
)

// use a temporary preferences file for the duration of the test
func tempPrefs(t *testing.T) {
	t.Helper()
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	orig := prefsPath
	prefsPath = func() (string, error) {
		return pth, nil
	}
	t.Cleanup(func() {
		prefsPath = orig
	})
}

func runMode(t *testing.T, mode func(*modalflag.Modes, io.Writer) error, args ...string) (string, error) {
	t.Helper()
	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	err := mode(md, tw)
	return tw.String(), err
}

func TestDemoAndInfo(t *testing.T) {
	tempPrefs(t)
	fn := filepath.Join(t.TempDir(), "demo.qrt")

	out, err := runMode(t, demo, "-o", fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out, "demo song written"))

	out, err = runMode(t, info, fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "tempo=6"))
	test.ExpectSuccess(t, strings.Contains(out, "size: "))
	test.ExpectSuccess(t, strings.Contains(out, "cells in use: "))
	test.ExpectSuccess(t, strings.Contains(out, "  001: 01 02 03 04\n"))
	test.ExpectSuccess(t, strings.Contains(out, "pattern=0 jump=0 instrument=0 wave=0"))

	// too many songs
	_, err = runMode(t, info, fn, fn)
	test.ExpectFailure(t, err)

	// not a song
	_, err = runMode(t, info, filepath.Join(t.TempDir(), "missing.qrt"))
	test.ExpectFailure(t, err)
}

func TestRender(t *testing.T) {
	tempPrefs(t)
	fn := filepath.Join(t.TempDir(), "demo.wav")

	out, err := runMode(t, render, "-o", fn, "-seconds", "1", "-mute", "12")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out, "rendered 1.0 seconds"))

	st, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 48000)

	_, err = runMode(t, render, "-seconds", "1")
	test.ExpectFailure(t, err)

	_, err = runMode(t, render, "-o", fn, "-mute", "16")
	test.ExpectFailure(t, err)
}

func TestRenderWithScript(t *testing.T) {
	tempPrefs(t)
	dir := t.TempDir()

	scr := filepath.Join(dir, "sfx.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte(`
		at(10, function()
			mute(4)
			write(0xff21, 0xf1)
			write(0xff22, 0x55)
			write(0xff23, 0x80)
		end)
		at(40, function() unmute(4) end)
	`), 0600))

	_, err := runMode(t, render, "-o", filepath.Join(dir, "sfx.wav"), "-seconds", "1", "-script", scr)
	test.ExpectSuccess(t, err)

	_, err = runMode(t, render, "-o", filepath.Join(dir, "sfx.wav"), "-script", filepath.Join(dir, "missing.lua"))
	test.ExpectFailure(t, err)
}

func TestTrace(t *testing.T) {
	tempPrefs(t)
	fn := filepath.Join(t.TempDir(), "replay.wav")

	out, err := runMode(t, trace, "-frames", "10", "-replay", fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "NR52 80"))
	test.ExpectSuccess(t, strings.Contains(out, "ch1 NR14"))
	test.ExpectSuccess(t, strings.Contains(out, "register writes in frames 0 to "))

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestState(t *testing.T) {
	tempPrefs(t)
	fn := filepath.Join(t.TempDir(), "state.dot")

	out, err := runMode(t, stateGraph, "-frames", "13", "-o", fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "000:02.00"))

	dot, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))
}

func TestPrefs(t *testing.T) {
	tempPrefs(t)

	out, err := runMode(t, editPrefs, "player.volume::0.5", "player.backend::oto")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "player.volume :: 0.5\n"))

	// saved values are loaded next time
	out, err = runMode(t, editPrefs)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "player.backend :: oto\n"))
	test.ExpectSuccess(t, strings.Contains(out, "player.volume :: 0.5\n"))

	_, err = runMode(t, editPrefs, "volume")
	test.ExpectFailure(t, err)
}
