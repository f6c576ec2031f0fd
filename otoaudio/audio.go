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

// Package otoaudio plays audio through oto. oto pulls samples from an
// io.Reader; Write() pushes samples into a bounded buffer that the reader
// drains. Write() blocks when the buffer is full so the audio device is the
// timing source for live playback.
package otoaudio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/quartet/curated"
)

// the amount of audio buffered between Write() and the device
const bufferDuration = 100 * time.Millisecond

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	stream *stream
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(sampleRate int) (*Audio, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferDuration / 2,
	})
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	aud := &Audio{
		ctx:    ctx,
		stream: newStream(int(float64(sampleRate)*bufferDuration.Seconds()) * 4),
	}

	aud.player = ctx.NewPlayer(aud.stream)
	aud.player.Play()

	return aud, nil
}

// Write adds samples to the stream read by the oto player.
func (aud *Audio) Write(samples []float32) error {
	return aud.stream.write(samples)
}

// Close stops playback. oto contexts cannot be closed so the context remains
// suspended until the program exits.
func (aud *Audio) Close() error {
	aud.stream.close()
	if err := aud.player.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	if err := aud.ctx.Suspend(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}

// stream is a bounded byte buffer of float32 samples. it implements io.Reader.
type stream struct {
	crit   sync.Mutex
	cond   *sync.Cond
	data   []byte
	limit  int
	closed bool
}

func newStream(limit int) *stream {
	s := &stream{limit: limit}
	s.cond = sync.NewCond(&s.crit)
	return s
}

func (s *stream) write(samples []float32) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	for len(s.data) >= s.limit && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return curated.Errorf("otoaudio: %v", "stream closed")
	}

	for _, v := range samples {
		s.data = binary.LittleEndian.AppendUint32(s.data, math.Float32bits(v))
	}
	return nil
}

// Read implements the io.Reader interface. Silence is returned if there is
// no data so that the player never stops.
func (s *stream) Read(p []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.closed {
		return 0, io.EOF
	}

	// whole samples only
	p = p[:len(p)&^3]

	n := copy(p, s.data)
	s.data = s.data[:copy(s.data, s.data[n:])]
	clear(p[n:])

	s.cond.Broadcast()
	return len(p), nil
}

func (s *stream) close() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.closed = true
	s.cond.Broadcast()
}
