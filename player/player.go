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

package player

import (
	"context"
	"sync"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/environment"
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/logger"
	"github.com/jetsetilly/quartet/song"
	"github.com/jetsetilly/quartet/tracker"
)

// Output is the destination of rendered audio. Samples are mono and in the
// range -1.0 to 1.0.
type Output interface {
	Write(samples []float32) error
	Close() error
}

// TickHook is called after every tick with the number of ticks since the
// current song was started.
type TickHook func(frame int)

// Player drives the Driver and renders audio.
type Player struct {
	env   *environment.Environment
	prefs *Preferences

	// crit is held for the duration of every tick
	crit sync.Mutex

	apu     *apu.APU
	drv     *driver.Driver
	tracker *tracker.Tracker
	out     Output

	hooks []TickHook

	samples SampleCounter
	buffer  []float32
	last    float32
	frame   int
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The output can be nil, in which case audio is rendered and discarded.
func NewPlayer(env *environment.Environment, p *Preferences, out Output) (*Player, error) {
	rate := p.SampleRate.Get().(int)
	if rate <= 0 {
		return nil, curated.Errorf("player: %v", "sample rate must be positive")
	}

	pl := &Player{
		env:   env,
		prefs: p,
		apu:   apu.NewAPU(rate),
		out:   out,
	}
	pl.drv = driver.NewDriver(env, pl.apu)
	pl.samples.Set(rate, VBlankFreq)

	return pl, nil
}

// SetTracker attaches a Tracker to the APU. Entries are grouped by tick. A nil
// value removes the tracker.
func (pl *Player) SetTracker(tr *tracker.Tracker) {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	pl.tracker = tr
	if tr == nil {
		pl.apu.SetTracker(nil)
	} else {
		pl.apu.SetTracker(tr)
	}
}

// AddTickHook adds a function to be called after every tick. Hooks run on the
// goroutine that runs the player and can use the driver and APU directly.
func (pl *Player) AddTickHook(f TickHook) {
	pl.crit.Lock()
	defer pl.crit.Unlock()
	pl.hooks = append(pl.hooks, f)
}

// Play starts the song from the beginning. A nil song stops playback. It is
// safe to call Play() while the player is running.
func (pl *Player) Play(s *song.Song) {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	pl.drv.StartSong(s)
	pl.samples.Set(pl.apu.SampleRate(), SongTickRate(s))
	pl.frame = 0

	if s != nil {
		logger.Logf(pl.perm(), "player", "tick rate %.4fHz, %.2f samples per tick",
			SongTickRate(s), pl.samples.PerTick())
	}
}

func (pl *Player) perm() logger.Permission {
	if pl.env == nil {
		return logger.Allow
	}
	return pl.env
}

// Driver returns the driver. Functions that are not safe to call from any
// goroutine should be called with BorrowDriver() instead.
func (pl *Player) Driver() *driver.Driver {
	return pl.drv
}

// APU returns the APU. It should only be used by tick hooks and the routine
// function of the driver. Use BorrowAPU() otherwise.
func (pl *Player) APU() *apu.APU {
	return pl.apu
}

// BorrowDriver runs the function while no tick is in progress.
func (pl *Player) BorrowDriver(f func(*driver.Driver)) {
	pl.crit.Lock()
	defer pl.crit.Unlock()
	f(pl.drv)
}

// BorrowAPU runs the function while no tick is in progress.
func (pl *Player) BorrowAPU(f func(*apu.APU)) {
	pl.crit.Lock()
	defer pl.crit.Unlock()
	f(pl.apu)
}

// Frame returns the number of ticks since the song was started.
func (pl *Player) Frame() int {
	pl.crit.Lock()
	defer pl.crit.Unlock()
	return pl.frame
}

// Step runs one tick of the driver and writes the audio for that tick to the
// output.
func (pl *Player) Step() error {
	buf := pl.tick()
	if pl.out == nil || len(buf) == 0 {
		return nil
	}
	if err := pl.out.Write(buf); err != nil {
		return curated.Errorf("player: %v", err)
	}
	return nil
}

func (pl *Player) tick() []float32 {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	pl.drv.Tick()
	pl.frame++

	for _, h := range pl.hooks {
		h(pl.frame)
	}

	if pl.tracker != nil {
		pl.tracker.EndFrame()
	}

	n := pl.samples.Next()
	if cap(pl.buffer) < n {
		pl.buffer = make([]float32, n)
	}
	pl.buffer = pl.buffer[:n]
	pl.apu.Render(pl.buffer)

	vol := float32(pl.prefs.Volume.Get().(float64))
	vol = min(max(vol, 0.0), 1.0)
	interp := pl.prefs.Interpolate.Get().(bool)
	for i, s := range pl.buffer {
		s *= vol
		if interp {
			s = (s + pl.last) / 2
		}
		pl.last = s
		pl.buffer[i] = s
	}

	return pl.buffer
}

// Run the player until the context is cancelled or the number of ticks has
// been reached. A ticks value of zero or less means there is no limit. The
// output is not closed.
//
// When the output does not block, Run() returns as quickly as the audio can
// be rendered.
func (pl *Player) Run(ctx context.Context, ticks int) error {
	for n := 0; ticks <= 0 || n < ticks; n++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := pl.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Seconds returns the number of ticks that are needed for the song to play for
// the given number of seconds.
func Seconds(s *song.Song, seconds float64) int {
	return int(seconds * SongTickRate(s))
}
