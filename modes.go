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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/logger"
	"github.com/jetsetilly/quartet/modalflag"
	"github.com/jetsetilly/quartet/otoaudio"
	"github.com/jetsetilly/quartet/player"
	"github.com/jetsetilly/quartet/sdlaudio"
	"github.com/jetsetilly/quartet/song"
	"github.com/jetsetilly/quartet/terminal"
	"github.com/jetsetilly/quartet/tracker"
	"github.com/jetsetilly/quartet/wavwriter"
)

// openBackend creates the live audio output. the sample rate preference is
// changed to the rate of the device if it is different.
func openBackend(backend string, prf *player.Preferences) (player.Output, error) {
	rate := prf.SampleRate.Get().(int)

	switch strings.ToLower(backend) {
	case "sdl":
		aud, err := sdlaudio.NewAudio(rate)
		if err != nil {
			return nil, err
		}
		if aud.SampleRate() != rate {
			prf.SampleRate.Set(aud.SampleRate())
		}
		return aud, nil

	case "oto":
		return otoaudio.NewAudio(rate)
	}

	return nil, fmt.Errorf("unknown audio backend (%s)", backend)
}

const playHelp = `keys while playing:
  1 to 4   toggle channel mute
  w        reset wave cache
  r        restart song
  q        quit`

// the status line is updated at this rate
const statusRate = 100 * time.Millisecond

func play(md *modalflag.Modes, output io.Writer, noIntSig func()) error {
	md.NewMode()
	md.AdditionalHelp(playHelp)

	c := addCommonFlags(md)
	backend := md.AddString("backend", "", "audio backend: sdl, oto (default from preferences)")
	seconds := md.AddFloat64("seconds", 0, "stop playing after number of seconds (0 is no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := songArg(md)
	if err != nil {
		return err
	}

	c.apply(output)

	// the interrupt signal is handled here so that the terminal can be
	// restored before the program ends
	noIntSig()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ses, err := newSession(filename, c, func(prf *player.Preferences) (player.Output, error) {
		b := *backend
		if b == "" {
			b = prf.Backend.Get().(string)
		}
		return openBackend(b, prf)
	})
	if err != nil {
		return err
	}
	defer ses.close()

	fmt.Fprintf(output, "playing %s\n", ses.song.Header)

	// playing without keyboard control is fine
	trm, err := terminal.Open()
	if err != nil {
		logger.Log(ses.env, "quartet", err.Error())
	} else {
		defer trm.Close()
	}

	var keys <-chan byte
	if trm != nil {
		keys = trm.Keys()
	}

	ticks := 0
	if *seconds > 0 {
		ticks = player.Seconds(ses.song, *seconds)
	}

	done := make(chan error, 1)
	go func() {
		done <- ses.pl.Run(ctx, ticks)
	}()

	status := time.NewTicker(statusRate)
	defer status.Stop()

	for {
		select {
		case err := <-done:
			return err

		case k := <-keys:
			action, ch := terminal.Decode(k)
			switch action {
			case terminal.ToggleMute:
				drv := ses.pl.Driver()
				if drv.Muted()&ch.Bit() != 0 {
					drv.Unmute(ch)
				} else {
					drv.Mute(ch)
				}
			case terminal.ResetWave:
				ses.pl.Driver().ResetWave()
			case terminal.Restart:
				ses.pl.Play(ses.song)
			case terminal.Quit:
				cancel()
			}

		case <-status.C:
			if trm != nil {
				var s string
				ses.pl.BorrowDriver(func(d *driver.Driver) {
					s = terminal.StatusLine(d.State())
				})
				trm.Status(s)
			}
		}
	}
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)
	out := md.AddString("o", "", "wav file to create (required)")
	seconds := md.AddFloat64("seconds", 30, "length of render in seconds")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := songArg(md)
	if err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("output file required for %s mode", md)
	}
	if *seconds <= 0 {
		return fmt.Errorf("seconds must be positive")
	}

	c.apply(output)

	ses, err := newSession(filename, c, func(prf *player.Preferences) (player.Output, error) {
		return wavwriter.New(*out, prf.SampleRate.Get().(int))
	})
	if err != nil {
		return err
	}

	err = ses.pl.Run(context.Background(), player.Seconds(ses.song, *seconds))
	if err != nil {
		ses.close()
		return err
	}

	faults := ses.pl.Driver().Faults()
	if err := ses.close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "rendered %.1f seconds to %s\n", *seconds, *out)
	if faults.Total() > 0 {
		fmt.Fprintf(output, "faults: %s\n", faults)
	}

	return nil
}

func trace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)
	frames := md.AddInt("frames", 600, "number of frames (ticks) to trace")
	maxEntries := md.AddInt("max", 100000, "maximum number of entries to keep")
	replay := md.AddString("replay", "", "render the trace to a wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := songArg(md)
	if err != nil {
		return err
	}
	if *frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}

	c.apply(output)

	ses, err := newSession(filename, c, nil)
	if err != nil {
		return err
	}
	defer ses.close()

	tr := tracker.NewTracker(*maxEntries)
	ses.pl.SetTracker(tr)

	// the song was started before the tracker was attached
	ses.pl.Play(ses.song)

	err = ses.pl.Run(context.Background(), *frames)
	if err != nil {
		return err
	}

	err = tr.Write(output)
	if err != nil {
		return err
	}

	tr.BorrowTracker(func(entries []tracker.Entry) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(output, "%d register writes in frames %d to %d\n",
			len(entries), entries[0].Frame, entries[len(entries)-1].Frame)
	})

	if *replay != "" {
		return replayTrace(tr, ses.song, ses.prefs.SampleRate.Get().(int), *replay)
	}

	return nil
}

// replayTrace writes the register writes in the tracker to a new APU and
// renders the result to a wav file.
func replayTrace(tr *tracker.Tracker, s *song.Song, rate int, filename string) error {
	aw, err := wavwriter.New(filename, rate)
	if err != nil {
		return err
	}

	a := apu.NewAPU(rate)

	var counter player.SampleCounter
	counter.Set(rate, player.SongTickRate(s))

	var buf []float32
	var werr error

	tr.Replay(0, len(tr.Copy())-1, a, func() {
		n := counter.Next()
		if cap(buf) < n {
			buf = make([]float32, n)
		}
		buf = buf[:n]
		a.Render(buf)
		if err := aw.Write(buf); err != nil && werr == nil {
			werr = err
		}
	})

	if werr != nil {
		return werr
	}
	return aw.Close()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	check := md.AddBool("check", true, "play the song once and report faults in the song data")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := songArg(md)
	if err != nil {
		return err
	}

	s, err := loadSong(filename)
	if err != nil {
		return err
	}
	defer s.Close()

	h := s.Header
	fmt.Fprintf(output, "%s\n", h)
	fmt.Fprintf(output, "size: %d bytes\n", len(s.Bytes()))
	fmt.Fprintf(output, "tick rate: %.4fHz\n", player.SongTickRate(s))

	used := 0
	for pat := 0; pat < h.Patterns; pat++ {
		for row := 0; row < song.PatternRows; row++ {
			if c, ok := s.Cell(pat, row); ok && !c.IsEmpty() {
				used++
			}
		}
	}
	fmt.Fprintf(output, "cells in use: %d of %d\n", used, h.Patterns*song.PatternRows)

	io.WriteString(output, "orders:\n")
	for o := 0; o < h.Orders; o++ {
		fmt.Fprintf(output, "  %03d:", o)
		for ch := 0; ch < song.NumChannels; ch++ {
			pat, ok := s.Order(o, ch)
			if ok && pat < h.Patterns {
				fmt.Fprintf(output, " %02x", pat)
			} else {
				fmt.Fprintf(output, " !%02x", pat)
			}
		}
		io.WriteString(output, "\n")
	}

	if !*check {
		return nil
	}

	// one pass through the order list at the starting tempo
	ticks := h.Orders * song.PatternRows * int(h.Tempo)

	drv := driver.NewDriver(nil, apu.NewAPU(apu.DefaultSampleRate))
	drv.StartSong(s)
	for range ticks {
		drv.Tick()
	}

	fmt.Fprintf(output, "faults after %d ticks: %s\n", ticks, drv.Faults())

	return nil
}

func stateGraph(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames (ticks) to play before the snapshot")
	out := md.AddString("o", "", "dot file to create (required)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := songArg(md)
	if err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("output file required for %s mode", md)
	}

	c.apply(output)

	ses, err := newSession(filename, c, nil)
	if err != nil {
		return err
	}
	defer ses.close()

	err = ses.pl.Run(context.Background(), *frames)
	if err != nil {
		return err
	}

	var st driver.State
	ses.pl.BorrowDriver(func(d *driver.Driver) {
		st = d.State()
	})

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	memviz.Map(f, &st)
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "driver state at %s written to %s\n", st.Position, *out)
	return nil
}

func demo(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	out := md.AddString("o", "demo.qrt", "song file to create")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	blob, err := song.Demo().Encode()
	if err != nil {
		return err
	}

	err = os.WriteFile(*out, blob, 0644)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "demo song written to %s (%d bytes)\n", *out, len(blob))
	return nil
}
