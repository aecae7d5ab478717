// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server.
const Address = "localhost:12600"

// the page served by statsview.
const page = "/debug/statsview"

// Server shows runtime statistics in a web browser. Useful for checking that
// the garbage collector is quiet during a run.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch the stats server in a new goroutine. The address of the page is
// written to output.
func Launch(output io.Writer) *Server {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	srv := &Server{mgr: statsview.New()}

	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, page)

	return srv
}

// Stop the stats server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
