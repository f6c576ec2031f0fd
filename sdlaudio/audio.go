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

// Package sdlaudio plays audio through the SDL audio queue. Samples are pushed
// with Write() which blocks when enough audio is already queued. This makes
// the audio device the timing source for live playback.
package sdlaudio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. we don't want it to be long
// because that introduces lag between a mute request and hearing the result.
// by the same token we don't want it too short because the queue will run
// dry and we'll hear clicks.
//
// the value has been discovered through trial and error. the precise value is
// not critical.
const bufferLength = 1024

// the number of buffers that can be queued before Write() waits
const maxQueuedBuffers = 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer reused by every call to Write()
	buffer []uint8

	// the number of bytes in the queue at which Write() will wait
	maxQueued uint32
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(sampleRate int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	if aud.spec.Freq != spec.Freq {
		logger.Logf(logger.Allow, "sdlaudio", "sample rate is %d not %d", aud.spec.Freq, spec.Freq)
	}

	aud.maxQueued = uint32(bufferLength * maxQueuedBuffers * 2)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SampleRate returns the sample rate of the opened device. This may be
// different to the rate that was asked for.
func (aud *Audio) SampleRate() int {
	return int(aud.spec.Freq)
}

// Write queues the samples for playback. Samples are in the range -1.0 to 1.0.
func (aud *Audio) Write(samples []float32) error {
	if cap(aud.buffer) < len(samples)*2 {
		aud.buffer = make([]uint8, len(samples)*2)
	}
	aud.buffer = aud.buffer[:len(samples)*2]

	for i, s := range samples {
		v := int16(math.Max(-1.0, math.Min(1.0, float64(s))) * math.MaxInt16)
		binary.LittleEndian.PutUint16(aud.buffer[i*2:], uint16(v))
	}

	for sdl.GetQueuedAudioSize(aud.id) > aud.maxQueued {
		time.Sleep(time.Millisecond)
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// Close waits for queued audio to finish and closes the audio device.
func (aud *Audio) Close() error {
	deadline := time.Now().Add(time.Second)
	for sdl.GetQueuedAudioSize(aud.id) > 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
