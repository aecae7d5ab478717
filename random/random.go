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

package random

import (
	"math/rand"
	"time"
)

// Random is a seeded random number generator.
type Random struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the seed is taken from the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed used to create the generator.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a random number in the range [0,n). Panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}
