package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var _ dice.Roller = (*SequenceRoller)(nil)

// SequenceRoller replays predetermined die results. When Fallback is set it
// is used once the sequence runs out; otherwise rolling past the end fails.
type SequenceRoller struct {
	mu       sync.Mutex
	rolls    []int
	index    int
	Fallback int
}

// NewSequenceRoller creates a roller that returns rolls in order
func NewSequenceRoller(rolls ...int) *SequenceRoller {
	return &SequenceRoller{rolls: rolls}
}

// Used returns how many predetermined rolls were consumed
func (r *SequenceRoller) Used() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *SequenceRoller) next(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var v int
	switch {
	case r.index < len(r.rolls):
		v = r.rolls[r.index]
		r.index++
	case r.Fallback > 0:
		v = r.Fallback
	default:
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", r.index, len(r.rolls))
	}

	if v > size {
		v = size
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid roll %d for d%d", v, size)
	}
	return v, nil
}

// Roll implements dice.Roller
func (r *SequenceRoller) Roll(size int) (int, error) {
	return r.next(size)
}

// RollN implements dice.Roller
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
