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
	"errors"
	"fmt"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/environment"
	"github.com/jetsetilly/quartet/logger"
	"github.com/jetsetilly/quartet/player"
	"github.com/jetsetilly/quartet/prefs"
	"github.com/jetsetilly/quartet/script"
	"github.com/jetsetilly/quartet/song"
)

// newPreferences creates the main environment and loads the player
// preferences. command line preferences take priority over the preferences
// file.
func newPreferences(cmdline string) (*environment.Environment, *player.Preferences, error) {
	pth, err := prefsPath()
	if err != nil {
		return nil, nil, err
	}
	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, nil, err
	}
	env := environment.NewEnvironment(environment.MainLabel, dsk)

	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if n := prefs.PopCommandLineStack(); n > 0 {
				logger.Logf(env, "quartet", "%d unused command line preferences", n)
			}
		}()
	}

	prf, err := player.NewPreferences(env.Prefs)
	if err != nil {
		return nil, nil, err
	}

	return env, prf, nil
}

// loadSong loads the song file. an empty filename loads the demo song.
func loadSong(filename string) (*song.Song, error) {
	if filename != "" {
		s, err := song.Load(filename)
		if curated.Has(err, song.BadVersion) {
			return nil, fmt.Errorf("%w: convert the song again with the current tools", err)
		}
		return s, err
	}
	blob, err := song.Demo().Encode()
	if err != nil {
		return nil, err
	}
	return song.New(blob)
}

// session is everything needed to play a song.
type session struct {
	env   *environment.Environment
	prefs *player.Preferences
	song  *song.Song
	out   player.Output
	pl    *player.Player
	scr   *script.Script
}

// newSession prepares the song for playback. the output function is called
// with the preferences and should return the output for the player. the
// output can be nil.
func newSession(filename string, c commonFlags, output func(*player.Preferences) (player.Output, error)) (*session, error) {
	ses := &session{}

	var err error

	ses.env, ses.prefs, err = newPreferences(*c.prefs)
	if err != nil {
		return nil, err
	}

	ses.song, err = loadSong(filename)
	if err != nil {
		return nil, err
	}

	if output != nil {
		out, err := output(ses.prefs)
		if err != nil {
			ses.close()
			return nil, err
		}
		ses.out = out
	}

	ses.pl, err = player.NewPlayer(ses.env, ses.prefs, ses.out)
	if err != nil {
		ses.close()
		return nil, err
	}

	if *c.script != "" {
		ses.scr = script.NewScript(ses.env, ses.pl.Driver(), ses.pl.APU())
		err = ses.scr.LoadFile(*c.script)
		if err != nil {
			ses.close()
			return nil, err
		}
		ses.pl.AddTickHook(ses.scr.Tick)
		ses.pl.Driver().SetRoutine(ses.scr.Routine)
	}

	if *c.mute < 0 || *c.mute > 0x0f {
		ses.close()
		return nil, curated.Errorf("mute mask must be 0 to 15")
	}
	ses.pl.Driver().SetMuted(uint8(*c.mute))

	ses.pl.Play(ses.song)

	return ses, nil
}

// close the output, the script and the song. errors from the output and the
// song are joined.
func (ses *session) close() error {
	var errs []error
	if ses.out != nil {
		errs = append(errs, ses.out.Close())
		ses.out = nil
	}
	if ses.scr != nil {
		ses.scr.Close()
		ses.scr = nil
	}
	if ses.song != nil {
		errs = append(errs, ses.song.Close())
		ses.song = nil
	}
	return errors.Join(errs...)
}
