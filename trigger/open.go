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

package trigger

import (
	"fmt"

	"github.com/jetsetilly/checkergen/curated"
	"github.com/jetsetilly/checkergen/logger"
)

// Sentinal error patterns.
const (
	NotAvailable = "trigger: %s port not available: %v"
)

// Config specifies which ports to open.
type Config struct {
	Serial    bool
	SerialDev string
	Baud      int
	Parallel  bool
	Chip      string
	ChipLines []int
}

// Open the ports specified by the configuration. If any port cannot be opened
// then ports already opened are closed again.
func Open(cfg Config) ([]Port, error) {
	var ports []Port

	if cfg.Serial {
		p, err := OpenSerial(cfg.SerialDev, cfg.Baud)
		if err != nil {
			return nil, curated.Errorf(NotAvailable, "serial", err)
		}
		logger.Logf(logger.Allow, "trigger", "opened %s", p)
		ports = append(ports, p)
	}

	if cfg.Parallel {
		p, err := OpenParallel(cfg.Chip, cfg.ChipLines)
		if err != nil {
			for _, q := range ports {
				_ = q.Close()
			}
			return nil, curated.Errorf(NotAvailable, "parallel", err)
		}
		logger.Logf(logger.Allow, "trigger", "opened %s", p)
		ports = append(ports, p)
	}

	return ports, nil
}

// ParallelWidth is the number of lines in a parallel port.
const ParallelWidth = 8

func checkLines(lines []int) error {
	if len(lines) != ParallelWidth {
		return fmt.Errorf("%d lines are required, %d specified", ParallelWidth, len(lines))
	}
	return nil
}

// bits returns the value of each line for the code. line 0 is the least
// significant bit.
func bits(v byte) []int {
	b := make([]int, ParallelWidth)
	for i := range b {
		b[i] = int(v>>i) & 0x01
	}
	return b
}
