package random

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var _ dice.Roller = (*SeededRoller)(nil)

// SeededRoller implements dice.Roller over a PCG stream so a seed always
// yields the same character.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller for the given seed
func NewSeededRoller(seed int64) *SeededRoller {
	u := uint64(seed)
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(u, u^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid die size: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = r.rng.IntN(size) + 1
	}
	return out, nil
}
