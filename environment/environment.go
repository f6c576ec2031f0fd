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

// Package environment gives a driver instance a context. The context names
// the instance and carries the preferences it was started with.
package environment

import (
	"github.com/jetsetilly/quartet/prefs"
)

// Label is used to name the environment
type Label string

// MainLabel is the label of the driver that is connected to the audio output.
const MainLabel = Label("")

// Environment is used to provide context for a driver. Particularly useful
// when more than one driver is running, for example when comparing a
// recording with a live playback.
type Environment struct {
	Label Label

	// preferences shared by every package that is given the environment.
	// can be nil
	Prefs *prefs.Disk

	// logging is suppressed for all but the main environment unless Verbose
	// is true
	Verbose bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The prefs argument can be nil.
func NewEnvironment(label Label, dsk *prefs.Disk) *Environment {
	return &Environment{
		Label: label,
		Prefs: dsk,
	}
}

// IsMain returns true if the environment is intended for the main driver.
func (env *Environment) IsMain() bool {
	return env.Label == MainLabel
}

// IsEnvironment checks the label and returns true if it matches.
func (env *Environment) IsEnvironment(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return true
	}
	return env.IsMain() || env.Verbose
}
