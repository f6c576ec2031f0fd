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

// Package terminal gives keyboard control of live playback. The terminal is
// put into cbreak mode so that key presses are received immediately.
//
//	1 to 4	toggle mute for the channel
//	w	tell the driver that wave RAM has been changed
//	r	restart the song
//	q	quit (also ESC and ctrl-c)
package terminal

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/quartet/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// the read timeout allows the input goroutine to notice that it has been
// stopped
const readTimeout = 100 * time.Millisecond

// Terminal reads key presses and writes a status line.
type Terminal struct {
	tty    *term.Term
	output io.Writer

	// true if output is a real terminal. the status line is only written to a
	// real terminal
	realOutput bool

	keys chan byte
	stop chan bool
	done chan bool
}

// Open the controlling terminal. Returns an error if the program is not
// running in a terminal.
func Open() (*Terminal, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, curated.Errorf("terminal: %v", "not running in a terminal")
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf("terminal: %v", err)
	}

	trm := &Terminal{
		tty:        tty,
		output:     os.Stdout,
		realOutput: xterm.IsTerminal(int(os.Stdout.Fd())),
		keys:       make(chan byte, 16),
		stop:       make(chan bool),
		done:       make(chan bool),
	}

	go trm.read()

	return trm, nil
}

func (trm *Terminal) read() {
	defer close(trm.done)

	b := make([]byte, 1)
	for {
		select {
		case <-trm.stop:
			return
		default:
		}

		n, err := trm.tty.Read(b)
		if n == 0 {
			// timeouts return zero bytes. a zero byte read with an error
			// other than a timeout means the terminal has gone
			if err != nil && err != io.EOF {
				return
			}
			continue
		}

		select {
		case trm.keys <- b[0]:
		default:
			// drop key presses that can't be handled quickly enough
		}
	}
}

// Keys returns the channel on which key presses are sent.
func (trm *Terminal) Keys() <-chan byte {
	return trm.keys
}

// Width returns the number of columns of the output terminal. Returns 80 if
// the width is not known.
func (trm *Terminal) Width() int {
	if !trm.realOutput {
		return 80
	}
	w, _, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Status replaces the status line.
func (trm *Terminal) Status(s string) {
	if !trm.realOutput {
		return
	}
	w := trm.Width() - 1
	if len(s) > w {
		s = s[:w]
	}
	io.WriteString(trm.output, "\r"+s+strings.Repeat(" ", w-len(s)))
}

// Close restores the terminal to the mode it was in when it was opened.
func (trm *Terminal) Close() error {
	close(trm.stop)
	<-trm.done

	if trm.realOutput {
		io.WriteString(trm.output, "\n")
	}

	err := trm.tty.Restore()
	if err != nil {
		_ = trm.tty.Close()
		return curated.Errorf("terminal: %v", err)
	}
	err = trm.tty.Close()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}
