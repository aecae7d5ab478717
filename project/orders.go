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

package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/checkergen/curated"
)

// WaitID can be used in an order in place of a group id. A wait screen is
// shown at that point of the order.
const WaitID = -1

// CheckOrder returns an error if any id in the order does not refer to a
// group.
func (p *Project) CheckOrder(order []int) error {
	if len(order) == 0 {
		return curated.Errorf(InvalidOrder, "empty order")
	}
	for _, id := range order {
		if id < WaitID || id >= len(p.groups) {
			return curated.Errorf(InvalidOrder, fmt.Sprintf("no group with id %d", id))
		}
	}
	return nil
}

// ParseOrder parses a list of group ids separated by commas or spaces. The
// order is not checked against any project.
func ParseOrder(s string) ([]int, error) {
	f := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(f) == 0 {
		return nil, curated.Errorf(InvalidOrder, "empty order")
	}

	order := make([]int, 0, len(f))
	for _, v := range f {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, curated.Errorf(InvalidOrder, fmt.Sprintf("not a group id (%s)", v))
		}
		order = append(order, id)
	}

	return order, nil
}

// SetOrders replaces the list of pre-registered orders.
func (p *Project) SetOrders(orders [][]int) error {
	for _, o := range orders {
		if err := p.CheckOrder(o); err != nil {
			return err
		}
	}

	p.orders = make([][]int, len(orders))
	for i := range orders {
		p.orders[i] = append([]int{}, orders[i]...)
	}
	p.dirty = true

	return nil
}

// Orders returns the pre-registered orders.
func (p *Project) Orders() [][]int {
	return p.orders
}

// GenerateOrders replaces the pre-registered orders with every cyclic
// permutation of the group ids. Together the orders form a latin square so
// that every group appears in every position exactly once.
func (p *Project) GenerateOrders() {
	p.orders = CyclicPermutations(len(p.groups))
	p.dirty = true
}

// CyclicPermutations returns the n cyclic permutations of the ids 0 to n-1.
// The first permutation is the ascending order and each subsequent
// permutation is rotated left by one.
func CyclicPermutations(n int) [][]int {
	perms := make([][]int, n)
	for j := 0; j < n; j++ {
		perms[j] = make([]int, n)
		for i := 0; i < n; i++ {
			perms[j][i] = (i + j) % n
		}
	}
	return perms
}
