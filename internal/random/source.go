// Package random turns an rpg-toolkit dice roller into the draws the
// generator needs: bounded integers, dice totals, uniform and weighted picks.
package random

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Source draws random values from a dice.Roller.
//
// Roller failures are sticky: the first error is kept, later draws return
// zero values, and Err reports it. Callers check Err once per stage instead
// of after every draw.
type Source struct {
	roller dice.Roller

	mu  sync.Mutex
	err error
}

// New wraps any rpg-toolkit roller
func New(roller dice.Roller) *Source {
	return &Source{roller: roller}
}

// NewCrypto uses the toolkit's default crypto roller
func NewCrypto() *Source {
	return New(dice.DefaultRoller)
}

// NewSeeded returns a reproducible source
func NewSeeded(seed int64) *Source {
	return New(NewSeededRoller(seed))
}

// Err returns the first roller error, if any
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = errors.Wrap(err, "dice roller failed")
	}
}

// Die rolls a single die in [1, size]
func (s *Source) Die(size int) int {
	if size <= 0 || s.Err() != nil {
		return 0
	}
	v, err := s.roller.Roll(size)
	if err != nil {
		s.fail(err)
		return 0
	}
	return v
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (s *Source) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v := s.Die(n)
	if v == 0 {
		return 0
	}
	return v - 1
}

// Roll sums count dice of the given size, e.g. Roll(2, 10) for 2d10
func (s *Source) Roll(count, size int) int {
	if count <= 0 || size <= 0 || s.Err() != nil {
		return 0
	}
	rolls, err := s.roller.RollN(count, size)
	if err != nil {
		s.fail(err)
		return 0
	}
	total := 0
	for _, r := range rolls {
		total += r
	}
	return total
}

// DropResult is the outcome of a roll that discards its lowest dice
type DropResult struct {
	Kept    []int
	Dropped []int
	Total   int
}

// RollDropLowest rolls count dice and discards the lowest drop of them
func (s *Source) RollDropLowest(count, size, drop int) DropResult {
	if count <= 0 || size <= 0 || s.Err() != nil {
		return DropResult{}
	}
	rolls, err := s.roller.RollN(count, size)
	if err != nil {
		s.fail(err)
		return DropResult{}
	}

	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Ints(sorted)

	if drop < 0 {
		drop = 0
	}
	if drop > len(sorted) {
		drop = len(sorted)
	}

	res := DropResult{
		Dropped: sorted[:drop],
		Kept:    sorted[drop:],
	}
	for _, v := range res.Kept {
		res.Total += v
	}
	return res
}

// Chance succeeds with the given percent probability
func (s *Source) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return s.Die(100) <= percent
}
