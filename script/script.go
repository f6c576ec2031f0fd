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

package script

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/quartet/curated"
	"github.com/jetsetilly/quartet/driver"
	"github.com/jetsetilly/quartet/environment"
	"github.com/jetsetilly/quartet/hardware/apu"
	"github.com/jetsetilly/quartet/logger"
	lua "github.com/yuin/gopher-lua"
)

// Driver is the part of driver.Driver used by a scenario.
type Driver interface {
	Mute(ch driver.ChannelID)
	Unmute(ch driver.ChannelID)
	ResetWave()
	Position() driver.Position
}

// event is a Lua function scheduled for a frame.
type event struct {
	frame int
	fn    *lua.LFunction
}

// Script is a Lua scenario. It is not safe for use by more than one goroutine.
// All functions should be called by the goroutine that ticks the driver.
type Script struct {
	env  *environment.Environment
	drv  Driver
	sink apu.Sink

	L        *lua.LState
	filename string

	events  []event
	frame   int
	routine *lua.LFunction

	// number of errors from scheduled functions and routines
	errors int
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(env *environment.Environment, drv Driver, sink apu.Sink) *Script {
	scr := &Script{
		env:      env,
		drv:      drv,
		sink:     sink,
		L:        lua.NewState(),
		filename: "<string>",
	}

	for name, f := range map[string]lua.LGFunction{
		"at":         scr.at,
		"after":      scr.after,
		"frame":      scr.getFrame,
		"position":   scr.position,
		"mute":       scr.mute,
		"unmute":     scr.unmute,
		"reset_wave": scr.resetWave,
		"write":      scr.write,
		"wave":       scr.wave,
		"routine":    scr.setRoutine,
		"log":        scr.log,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(f))
	}

	return scr
}

func (scr *Script) perm() logger.Permission {
	if scr.env == nil {
		return logger.Allow
	}
	return scr.env
}

// LoadFile runs the top level of the Lua file. Functions are usually
// scheduled with at() and after() at this point.
func (scr *Script) LoadFile(filename string) error {
	scr.filename = filename
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	logger.Logf(scr.perm(), "script", "%s: %d functions scheduled", filename, scr.Pending())
	return nil
}

// LoadString is the same as LoadFile but with the script in a string.
func (scr *Script) LoadString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// Pending returns the number of scheduled functions that have not been called.
func (scr *Script) Pending() int {
	return len(scr.events)
}

// Errors returns the number of errors raised by scheduled functions and
// routines.
func (scr *Script) Errors() int {
	return scr.errors
}

// Tick calls the functions scheduled for the frame and any earlier frames.
// It has the signature of player.TickHook.
func (scr *Script) Tick(frame int) {
	scr.frame = frame
	for len(scr.events) > 0 && scr.events[0].frame <= frame {
		e := scr.events[0]
		scr.events = scr.events[1:]
		scr.call(e.fn)
	}
}

// Routine has the signature of driver.RoutineFunc. It calls the function
// given to routine() by the script.
func (scr *Script) Routine(ch driver.ChannelID, param uint8) {
	if scr.routine == nil {
		return
	}
	scr.call(scr.routine, lua.LNumber(ch+1), lua.LNumber(param))
}

func (scr *Script) call(fn *lua.LFunction, args ...lua.LValue) {
	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		scr.errors++
		logger.Logf(scr.perm(), "script", "%s: frame %d: %v", scr.filename, scr.frame, err)
	}
}

// schedule keeps the events list sorted by frame. events for the same frame
// are called in the order they were scheduled.
func (scr *Script) schedule(frame int, fn *lua.LFunction) {
	i := sort.Search(len(scr.events), func(i int) bool {
		return scr.events[i].frame > frame
	})
	scr.events = append(scr.events, event{})
	copy(scr.events[i+1:], scr.events[i:])
	scr.events[i] = event{frame: frame, fn: fn}
}

func (scr *Script) at(L *lua.LState) int {
	frame := L.CheckInt(1)
	fn := L.CheckFunction(2)
	scr.schedule(frame, fn)
	return 0
}

func (scr *Script) after(L *lua.LState) int {
	frames := L.CheckInt(1)
	fn := L.CheckFunction(2)
	if frames < 0 {
		L.ArgError(1, "frames must not be negative")
	}
	scr.schedule(scr.frame+frames, fn)
	return 0
}

func (scr *Script) getFrame(L *lua.LState) int {
	L.Push(lua.LNumber(scr.frame))
	return 1
}

func (scr *Script) position(L *lua.LState) int {
	p := scr.drv.Position()
	L.Push(lua.LNumber(p.Order))
	L.Push(lua.LNumber(p.Row))
	L.Push(lua.LNumber(p.Tick))
	return 3
}

// channel argument. channels are numbered 1 to 4 in scripts
func (scr *Script) channel(L *lua.LState, n int) driver.ChannelID {
	ch := L.CheckInt(n)
	if ch < 1 || ch > driver.NumChannels {
		L.ArgError(n, fmt.Sprintf("channel must be 1 to %d", driver.NumChannels))
	}
	return driver.ChannelID(ch - 1)
}

func (scr *Script) mute(L *lua.LState) int {
	scr.drv.Mute(scr.channel(L, 1))
	return 0
}

func (scr *Script) unmute(L *lua.LState) int {
	scr.drv.Unmute(scr.channel(L, 1))
	return 0
}

func (scr *Script) resetWave(L *lua.LState) int {
	scr.drv.ResetWave()
	return 0
}

func (scr *Script) byteArg(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value must be 0 to 255")
	}
	return uint8(v)
}

func (scr *Script) write(L *lua.LState) int {
	reg := apu.Register(L.CheckInt(1))
	if !reg.Valid() {
		L.ArgError(1, fmt.Sprintf("%#04x is not a sound register", uint16(reg)))
	}
	scr.sink.Write(reg, scr.byteArg(L, 2))
	return 0
}

func (scr *Script) wave(L *lua.LState) int {
	t := L.CheckTable(1)
	if t.Len() != apu.WaveRAMSize {
		L.ArgError(1, fmt.Sprintf("wave must have %d entries", apu.WaveRAMSize))
	}

	var data [apu.WaveRAMSize]uint8
	for i := range data {
		v, ok := t.RawGetInt(i + 1).(lua.LNumber)
		if !ok || v < 0 || v > 0xff {
			L.ArgError(1, fmt.Sprintf("wave entry %d must be 0 to 255", i+1))
		}
		data[i] = uint8(v)
	}

	// the DAC must be off while wave RAM is written to
	scr.sink.Write(apu.NR30, 0x00)
	for i, b := range data {
		scr.sink.Write(apu.WaveRAM+apu.Register(i), b)
	}
	scr.drv.ResetWave()

	return 0
}

func (scr *Script) setRoutine(L *lua.LState) int {
	if L.Get(1) == lua.LNil {
		scr.routine = nil
		return 0
	}
	scr.routine = L.CheckFunction(1)
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Logf(scr.perm(), "script", "%s", L.CheckString(1))
	return 0
}
