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
	"fmt"
	"strings"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/prefs"
)

// Preferences for the player. Changing a preference does not affect a player
// that has already been created, except for Volume and Interpolate.
type Preferences struct {
	dsk *prefs.Disk

	// sample rate of the rendered audio
	SampleRate prefs.Int

	// output volume in the range 0.0 to 1.0
	Volume prefs.Float

	// the live audio backend. either "sdl" or "oto"
	Backend prefs.String

	// smooth the rendered audio with a simple low-pass filter
	Interpolate prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	sampleRate  = 48000
	volume      = 0.8
	backend     = "sdl"
	interpolate = false
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The player preferences are added to the disk, usually the Prefs field
// of the main environment, and loaded.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	if dsk == nil {
		return nil, curated.Errorf("player: %v", "preferences disk is nil")
	}

	p := &Preferences{dsk: dsk}
	p.SetDefaults()

	p.Volume.SetHookPost(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf("player: %v", "volume must be between 0.0 and 1.0")
		}
		return nil
	})
	p.Backend.SetHookPost(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case "sdl", "oto":
			return nil
		}
		return curated.Errorf("player: %v", fmt.Sprintf("unknown audio backend (%s)", v))
	})

	err := p.dsk.Add("player.sampleRate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.backend", &p.Backend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("player.interpolate", &p.Interpolate)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all player settings to default values.
func (p *Preferences) SetDefaults() {
	p.SampleRate.Set(sampleRate)
	p.Volume.Set(volume)
	p.Backend.Set(backend)
	p.Interpolate.Set(interpolate)
}

// Load player preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current player preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
