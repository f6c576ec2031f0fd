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

package sdlaudio_test

import (
	"testing"

	"github.com/jetsetilly/quartet/sdlaudio"
	"github.com/jetsetilly/quartet/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestOpenAndClose(t *testing.T) {
	// the dummy driver doesn't need a sound device
	t.Setenv("SDL_AUDIODRIVER", "dummy")

	aud, err := sdlaudio.NewAudio(22050)
	if err != nil {
		t.Skipf("no audio: %v", err)
	}
	test.ExpectInequality(t, sdl.WasInit(sdl.INIT_AUDIO), uint32(0))
	test.ExpectSuccess(t, aud.SampleRate() > 0)

	test.ExpectSuccess(t, aud.Write(make([]float32, 256)))
	test.ExpectSuccess(t, aud.Close())

	// closing releases the audio subsystem
	test.ExpectEquality(t, sdl.WasInit(sdl.INIT_AUDIO), uint32(0))
}
