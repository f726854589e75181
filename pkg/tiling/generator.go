// Package tiling grows Penrose tilings by applying Robinson triangle
// substitution to a working set of triangles, one generation at a time.
package tiling

import (
	"errors"
	"fmt"
	"sync"

	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// ErrNegativeGenerations is returned when a negative generation count is requested
var ErrNegativeGenerations = errors.New("generation count must not be negative")

// Options tunes how a generation is computed. The result never depends on it.
type Options struct {
	// Workers is the number of goroutines sharing one generation.
	// Values below 2 decompose sequentially.
	Workers int
}

// DefaultOptions returns sequential options
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Generate applies the given number of generations to the seeds. Triangle i
// of one generation is replaced by its two children at positions 2i and 2i+1
// of the next, so the result has len(seeds)·2ⁿ triangles in a fixed order.
//
// Any substitution failure aborts the whole call; no partial tiling is
// returned. The seeds are never modified.
func Generate(seeds []robinson.Triangle, generations int, opts *Options) ([]robinson.Triangle, error) {
	if generations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeGenerations, generations)
	}
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	current := make([]robinson.Triangle, len(seeds))
	copy(current, seeds)

	log := Logger()
	for g := 1; g <= generations; g++ {
		next, err := Subdivide(current, opts)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", g, err)
		}
		current = next
		log.Debug("generation complete", "generation", g, "triangles", len(current))
	}

	return current, nil
}

// Subdivide performs a single generation
func Subdivide(set []robinson.Triangle, opts *Options) ([]robinson.Triangle, error) {
	workers := 1
	if opts != nil && opts.Workers > 1 {
		workers = opts.Workers
	}
	if workers > len(set) {
		workers = len(set)
	}

	next := make([]robinson.Triangle, 2*len(set))
	if workers <= 1 {
		if err := subdivideRange(set, next, 0, len(set)); err != nil {
			return nil, err
		}
		return next, nil
	}

	chunk := (len(set) + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(set))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			errs[w] = subdivideRange(set, next, start, end)
		}(w, start, end)
	}
	wg.Wait()

	// Ranges are ordered, so the first error is the one with the lowest
	// index, exactly as a sequential pass would report it.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// subdivideRange decomposes set[start:end] into next[2*start:2*end]
func subdivideRange(set, next []robinson.Triangle, start, end int) error {
	for i := start; i < end; i++ {
		first, second, err := robinson.Decompose(set[i])
		if err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
		next[2*i] = first
		next[2*i+1] = second
	}
	return nil
}
