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

package runstate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/paths"
	"github.com/jetsetilly/checkergen/trigger"
)

// Played is the outcome of a single group.
type Played struct {
	ID   int
	Pass bool
}

// Result holds the log buffers of a run.
type Result struct {
	// the order of group ids
	Order []int

	// every group played, including groups played again after failing
	Played []Played

	// per frame samples. Timestamps and Durations are only collected if the
	// corresponding option is set. Triggers holds trigger.None for frames
	// where no code was sent
	Timestamps []float64
	Durations  []float64
	Triggers   []int
}

// WriteLog writes the result as tab separated values. The display options are
// written first, followed by the order and the outcome of every played group.
// Per frame rows follow if timestamps or durations were collected.
func (res Result) WriteLog(w io.Writer, keys []string, values []string) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	rows := [][]string{
		append([]string{"display options:"}, keys...),
		append([]string{""}, values...),
	}

	order := []string{"order:"}
	for _, id := range res.Order {
		order = append(order, strconv.Itoa(id))
	}
	rows = append(rows, order)

	for _, p := range res.Played {
		outcome := "pass"
		if !p.Pass {
			outcome = "fail"
		}
		rows = append(rows, []string{strconv.Itoa(p.ID), outcome})
	}

	if len(res.Timestamps) > 0 || len(res.Durations) > 0 {
		header := []string{"frame"}
		if len(res.Timestamps) > 0 {
			header = append(header, "timestamp")
		}
		if len(res.Durations) > 0 {
			header = append(header, "duration")
		}
		header = append(header, "trigger")
		rows = append(rows, header)

		for i := range res.Triggers {
			r := []string{strconv.Itoa(i)}
			if i < len(res.Timestamps) {
				r = append(r, strconv.FormatFloat(res.Timestamps[i], 'f', 6, 64))
			}
			if i < len(res.Durations) {
				r = append(r, strconv.FormatFloat(res.Durations[i], 'f', 6, 64))
			}
			if res.Triggers[i] == trigger.None {
				r = append(r, "")
			} else {
				r = append(r, fmt.Sprintf("%d sent", res.Triggers[i]))
			}
			rows = append(rows, r)
		}
	}

	if err := tsv.WriteAll(rows); err != nil {
		return err
	}
	return tsv.Error()
}

// logName returns the filename of the log file. The name option is used if it
// has been set.
func (rs *RunState) logName() string {
	if n := rs.opts.Name.String(); n != "" {
		return fmt.Sprintf("%s.log", n)
	}
	return fmt.Sprintf("%s.log", paths.UniqueFilename("log", rs.set.Name))
}

func (rs *RunState) writeLog() error {
	pth, err := paths.ResourcePath("logs", rs.logName())
	if err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := rs.result.WriteLog(f, rs.opts.Keys(), rs.opts.Values()); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "runstate", "log written to %s", pth)
	return nil
}
