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

package tracker

import (
	"github.com/jetsetilly/quartet/hardware/apu"
)

// Replay writes the entries from start to end (inclusive) to the sink. The
// endFrame function is called whenever the frame number changes and after the
// last entry. It can be nil.
func (tr *Tracker) Replay(start int, end int, sink apu.Sink, endFrame func()) {
	entries := tr.Copy()
	if len(entries) == 0 {
		return
	}

	start = max(start, 0)
	end = min(end, len(entries)-1)
	if start > end {
		return
	}

	frame := entries[start].Frame
	for _, e := range entries[start : end+1] {
		for frame < e.Frame {
			if endFrame != nil {
				endFrame()
			}
			frame++
		}
		sink.Write(e.Register, e.Data)
	}

	if endFrame != nil {
		endFrame()
	}
}
