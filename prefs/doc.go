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

// Package prefs implements typed preference values and a simple disk format
// for saving and loading them.
//
// A preference value is one of the Bool, Int, Float or String types. Values
// are added to a Disk instance under a key. The Disk can then Save() and
// Load() the values:
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("player.sampleRate", &rate)
//	dsk.Load()
//
// Each line of the preferences file is a key and a value, separated by the
// KeySep string. Lines for keys that are not in the Disk instance are
// preserved when saving so that more than one Disk can share the same file.
//
// Values for keys can also be supplied on the command line as a string of
// key::value pairs, separated by semi-colons. See PushCommandLineStack().
package prefs
