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
	"fmt"

	"github.com/jetsetilly/checkergen/group"
	"github.com/jetsetilly/checkergen/project"
)

// Kind of item in the play queue.
type Kind int

// List of valid Kind values.
const (
	KindGroup Kind = iota
	KindWait
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindWait:
		return "wait"
	}
	return "unknown"
}

// Item in the play queue.
type Item struct {
	Kind Kind

	// the group id. only meaningful for KindGroup
	ID int

	Cue group.Cue

	// the number of times the group has been played again after failing
	Attempt int
}

func (it Item) String() string {
	if it.Kind == KindWait {
		return "wait"
	}
	s := fmt.Sprintf("%d", it.ID)
	if it.Cue.BlockStart {
		s = fmt.Sprintf("[%s", s)
	}
	if it.Cue.BlockEnd {
		s = fmt.Sprintf("%s]", s)
	}
	if it.Attempt > 0 {
		s = fmt.Sprintf("%s(%d)", s, it.Attempt)
	}
	return s
}

func newItem(kind Kind, id int) Item {
	return Item{Kind: kind, ID: id, Cue: group.Cue{Order: -1}}
}

// Plan returns the play queue for the order. Each repeat of the order is a
// block and is preceded by a wait screen if waits is true. The WaitID in an
// order becomes a wait screen.
//
// The orderIndex is announced at the start of each block unless it is
// negative.
func Plan(order []int, orderIndex int, repeats int, waits bool) []Item {
	var items []Item

	for r := 0; r < repeats; r++ {
		if waits {
			items = append(items, newItem(KindWait, project.WaitID))
		}

		first := -1
		last := -1
		for _, id := range order {
			if id == project.WaitID {
				items = append(items, newItem(KindWait, id))
				continue
			}
			items = append(items, newItem(KindGroup, id))
			if first == -1 {
				first = len(items) - 1
			}
			last = len(items) - 1
		}

		if first >= 0 {
			items[first].Cue.BlockStart = true
			items[first].Cue.Order = orderIndex
			items[last].Cue.BlockEnd = true
		}
	}

	return items
}

// settle moves block cues away from groups that have no frames. The start of
// a block is moved to the first group in the block with frames and the end to
// the last. A block where no group has frames is left alone.
func settle(items []Item, frames func(id int) int) {
	for s := 0; s < len(items); s++ {
		if !items[s].Cue.BlockStart {
			continue
		}

		e := s
		for e < len(items) && !items[e].Cue.BlockEnd {
			e++
		}
		if e == len(items) {
			return
		}

		first := -1
		last := -1
		for i := s; i <= e; i++ {
			if items[i].Kind == KindGroup && frames(items[i].ID) > 0 {
				if first == -1 {
					first = i
				}
				last = i
			}
		}

		if first >= 0 {
			order := items[s].Cue.Order
			items[s].Cue.BlockStart = false
			items[s].Cue.Order = -1
			items[e].Cue.BlockEnd = false
			items[first].Cue.BlockStart = true
			items[first].Cue.Order = order
			items[last].Cue.BlockEnd = true
		}

		s = e
	}
}

// queue of items being played. failed groups are appended to the queue while
// it is being played.
type queue struct {
	items []Item

	// the maximum number of times a failed group is played again. zero
	// disables retries
	tryagain int

	// a wait screen is appended before every trybreak retries
	trybreak int

	// the number of retries appended so far
	appended int
}

func newQueue(items []Item, tryagain int, trybreak int) *queue {
	if trybreak <= 0 {
		for _, it := range items {
			if it.Kind == KindGroup && it.Attempt == 0 {
				trybreak++
			}
		}
	}
	if trybreak <= 0 {
		trybreak = 1
	}
	return &queue{
		items:    items,
		tryagain: tryagain,
		trybreak: trybreak,
	}
}

// retry appends the failed item to the queue if it has not already been tried
// too many times. returns true if the item was appended.
func (q *queue) retry(it Item) bool {
	if it.Kind != KindGroup || it.Attempt >= q.tryagain {
		return false
	}

	if q.appended%q.trybreak == 0 {
		q.items = append(q.items, newItem(KindWait, project.WaitID))
	}
	q.appended++

	r := newItem(KindGroup, it.ID)
	r.Attempt = it.Attempt + 1
	q.items = append(q.items, r)

	return true
}
