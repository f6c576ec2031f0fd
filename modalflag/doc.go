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

// Package modalflag is a wrapper for the flag package in the standard library.
// It adds modes to the command line. A mode is a word, given before any
// arguments, that selects a group of flags. The quartet command uses it like
// this:
//
//	quartet PLAY -backend oto song.qrt
//	quartet RENDER -o song.wav -seconds 30 song.qrt
//
// Each call to Parse() consumes one layer of the command line. Modes are
// added with AddSubModes() before the call to Parse(), flags are added with
// the Add*() functions. The first sub-mode is the default and is used when no
// mode is given on the command line:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RENDER")
//	logging := md.AddBool("log", false, "echo log to stderr")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		backend := md.AddString("backend", "sdl", "audio backend")
//		p, err := md.Parse()
//		...
//	}
//
// Mode names are not case sensitive. Help is printed automatically for the
// -help flag and includes the list of sub-modes.
package modalflag
