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

// Package statsview runs a local HTTP server with runtime statistics for the
// quartet process. It is useful for watching allocations and GC pauses while
// the player is running.
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// Graphs are viewable at localhost:12650/debug/statsview and the standard Go
// pprof statistics at localhost:12650/debug/pprof/
package statsview
