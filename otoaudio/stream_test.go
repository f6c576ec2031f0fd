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

package otoaudio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/jetsetilly/quartet/test"
)

func TestStream(t *testing.T) {
	s := newStream(16)

	test.ExpectSuccess(t, s.write([]float32{0.25, -0.5}))

	p := make([]byte, 14)
	n, err := s.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(p)), float32(0.25))
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(p[4:])), float32(-0.5))

	// padded with silence
	test.ExpectEquality(t, binary.LittleEndian.Uint32(p[8:]), uint32(0))
}

func TestStreamBlocking(t *testing.T) {
	s := newStream(8)
	test.ExpectSuccess(t, s.write([]float32{1, 1}))

	done := make(chan error)
	go func() {
		done <- s.write([]float32{1})
	}()

	select {
	case <-done:
		t.Fatalf("write did not block on a full stream")
	case <-time.After(20 * time.Millisecond):
	}

	_, _ = s.Read(make([]byte, 4))
	test.ExpectSuccess(t, <-done)

	s.close()
	test.ExpectFailure(t, s.write([]float32{1}))
	_, err := s.Read(make([]byte, 4))
	test.ExpectEquality(t, err, io.EOF)
}
