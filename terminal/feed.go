// This file is part of Gophervic.
//
// Gophervic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervic.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/jetsetilly/gophervic/curated"
	"github.com/jetsetilly/gophervic/hardware/input"
	"github.com/jetsetilly/gophervic/logger"
)

// Sentinel errors returned by the terminal package.
const (
	NoInput     = "terminal: no input file"
	NotTerminal = "terminal: input is not a terminal: %v"
)

// Sink is the destination of the input events created by Feed(). It is
// satisfied by hardware.Machine.
type Sink interface {
	PushEvent(ev input.InputEvent) error
}

// translate changes the line endings of the host into RETURN.
var translate = strings.NewReplacer("\r\n", "\r", "\n", "\r")

// Feed reads from the reader until the context is cancelled or the reader is
// exhausted. Every successful read is forwarded to the sink as a single
// TypeString event. A read that arrives while a previous string is still being
// typed replaces that string.
//
// The context is checked between reads. A blocked read is not interrupted.
func Feed(ctx context.Context, r io.Reader, sink Sink) error {
	buf := make([]byte, 256)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.Read(buf)
		if n > 0 {
			s := translate.Replace(string(buf[:n]))
			perr := sink.PushEvent(input.InputEvent{Event: input.TypeString, Data: s})
			if perr != nil {
				if !curated.Is(perr, input.QueueFull) {
					return perr
				}
				logger.Logf(logger.Allow, "terminal", "dropped input: %q", s)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("terminal: %v", err)
		}
	}
}
