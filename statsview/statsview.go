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

package statsview

import (
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gophervic/logger"
)

// DefaultAddress is the address the server listens on if no other address is
// given.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// the viewer configuration is global to the statsview package so only one
// server can ever be launched
var launch sync.Once

// Launch a new goroutine running the statsview server at the address. If the
// address is empty DefaultAddress is used. Returns false if a server has
// already been launched, in which case the address argument is ignored.
func Launch(addr string) bool {
	if addr == "" {
		addr = DefaultAddress
	}

	launched := false

	launch.Do(func() {
		launched = true

		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()

		go func() {
			if err := mgr.Start(); err != nil {
				logger.Logf(logger.Allow, "statsview", "server stopped: %v", err)
			}
		}()

		logger.Logf(logger.Allow, "statsview", "stats server available at %s%s", addr, url)
	})

	return launched
}
