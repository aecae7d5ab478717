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

package sequencer

import (
	"github.com/jetsetilly/checkergen/logger"
	"github.com/jetsetilly/checkergen/project"
	"github.com/jetsetilly/checkergen/random"
)

// ResolveOrder returns the order of group ids to play. An explicit order takes
// precedence. Otherwise one of the registered orders is chosen at random, or
// if there are no registered orders the groups are played in ascending order.
//
// The index of the chosen registered order is returned. The index is -1 if
// the order is not a registered order.
func ResolveOrder(prj *project.Project, explicit []int, rnd *random.Random) ([]int, int, error) {
	if len(explicit) > 0 {
		if err := prj.CheckOrder(explicit); err != nil {
			return nil, -1, err
		}
		return append([]int{}, explicit...), -1, nil
	}

	if orders := prj.Orders(); len(orders) > 0 {
		idx := rnd.Intn(len(orders))
		logger.Logf(logger.Allow, "sequencer", "order %d chosen from %d registered orders", idx, len(orders))
		return append([]int{}, orders[idx]...), idx, nil
	}

	order := make([]int, len(prj.Groups()))
	for i := range order {
		order[i] = i
	}
	return order, -1, nil
}
