package random

// Choose picks one item uniformly. ok is false for an empty slice.
func Choose[T any](s *Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[s.Intn(len(items))], true
}

// ChooseWeighted picks one item with probability proportional to weight.
// Items with a weight of zero or less are never picked; ok is false when no
// item is eligible.
func ChooseWeighted[T any](s *Source, items []T, weight func(T) int) (item T, ok bool) {
	total := 0
	weights := make([]int, len(items))
	for i, it := range items {
		w := weight(it)
		if w > 0 {
			weights[i] = w
			total += w
		}
	}
	if total == 0 {
		return item, false
	}

	roll := s.Intn(total)
	for i, w := range weights {
		if w == 0 {
			continue
		}
		if roll < w {
			return items[i], true
		}
		roll -= w
	}

	// unreachable unless the roller returned out of range
	for i := len(items) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i], true
		}
	}
	return item, false
}

// Sample picks up to n distinct items uniformly, preserving draw order
func Sample[T any](s *Source, items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + s.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Shuffle returns a shuffled copy of items
func Shuffle[T any](s *Source, items []T) []T {
	return Sample(s, items, len(items))
}
