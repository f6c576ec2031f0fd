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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/quartet/logger"
	"github.com/jetsetilly/quartet/modalflag"
	"github.com/jetsetilly/quartet/prefs"
	"github.com/jetsetilly/quartet/resources"
	"github.com/jetsetilly/quartet/statsview"
	"github.com/jetsetilly/quartet/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used by modes that handle the
	// interrupt signal themselves.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// the location of the preferences file. tests replace this so that the
// user's preferences are not touched
var prefsPath = func() (string, error) {
	return resources.JoinPath(prefs.DefaultPrefsFile)
}

func main() {
	state := make(chan stateRequest)

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// default interrupt handler. can be turned off with reqNoIntSig
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(state, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			done = true

		case s := <-state:
			switch s.req {
			case reqQuit:
				done = true
				if s.args != nil {
					if v, ok := s.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if s.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(state chan stateRequest, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "RENDER", "TRACE", "INFO", "STATE", "DEMO", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		state <- stateRequest{req: reqQuit, args: exitParseError}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, os.Stdout, func() {
			state <- stateRequest{req: reqNoIntSig}
		})

	case "RENDER":
		err = render(md, os.Stdout)

	case "TRACE":
		err = trace(md, os.Stdout)

	case "INFO":
		err = info(md, os.Stdout)

	case "STATE":
		err = stateGraph(md, os.Stdout)

	case "DEMO":
		err = demo(md, os.Stdout)

	case "PREFS":
		err = editPrefs(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		logger.Tail(os.Stdout, 10)
		state <- stateRequest{req: reqQuit, args: exitModeError}
		return
	}

	state <- stateRequest{req: reqQuit}
}

// flags shared by the modes that play a song
type commonFlags struct {
	log       *bool
	statsview *bool
	prefs     *string
	script    *string
	mute      *int
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	c := commonFlags{
		log:    md.AddBool("log", false, "echo log to stdout"),
		prefs:  md.AddString("prefs", "", "preferences for this session (key::value; ...)"),
		script: md.AddString("script", "", "lua scenario to run alongside the song"),
		mute:   md.AddInt("mute", 0, "mute mask. bit 0 is pulse 1, bit 3 is noise"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

func (c commonFlags) apply(output io.Writer) {
	if *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
	if c.statsview != nil && *c.statsview {
		statsview.Launch(output)
	}
}

// the song file is optional in most modes. the demo song is used if there
// is no file
func songArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func editPrefs(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments are key::value pairs which are saved to the preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	for _, a := range args {
		if !strings.Contains(a, "::") {
			return fmt.Errorf("preference must be in the form key::value (%s)", a)
		}
	}

	_, prf, err := newPreferences(strings.Join(args, ";"))
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if err := prf.Save(); err != nil {
			return err
		}
	}

	io.WriteString(output, prf.String())
	return nil
}
