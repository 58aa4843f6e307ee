package rng

import "errors"

// ErrNoWeight is returned when a weight set has no positive entry, so no
// index could ever be selected.
var ErrNoWeight = errors.New("rng: weights empty or all non-positive")

// DiscreteSample selects an index with probability proportional to its
// weight. It draws once from src, scales the draw by the total weight,
// and walks the running sum until it covers the draw. Zero-weight entries
// are never selected.
func DiscreteSample(src Source, weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrNoWeight
	}

	p := src.Next() * total
	sum := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		sum += w
		last = i
		if sum >= p {
			return i, nil
		}
	}
	// Float accumulation can leave sum fractionally below p; the draw
	// belongs to the final positive weight.
	return last, nil
}
