package search

import (
	"errors"
	"fmt"
)

// ErrNoCycle is returned by DetectCycle when no state repeats within the
// step limit.
var ErrNoCycle = errors.New("search: no cycle found")

// A Cycle records a simulation whose fingerprint repeats, so that its
// running total can be extrapolated to any step count.
type Cycle struct {
	// Start is the step after which the repeating state first occurred.
	Start int
	// Length is the number of steps between the two occurrences.
	Length int

	values []int // values[i] is the total after i steps
}

// DetectCycle calls step until the fingerprint it returns repeats.
// Each call advances the simulation by one step and returns a
// fingerprint that fully determines all later steps, along with the
// running total after that step. initial is the total before any step.
//
// The fingerprint must capture everything that influences future
// totals (for instance, input positions modulo their lengths and the
// shape of a surface relative to its lowest point) even though the
// total itself grows without bound.
func DetectCycle[K comparable](initial, limit int, step func() (K, int)) (*Cycle, error) {
	seen := make(map[K]int)
	values := []int{initial}
	for i := 1; i <= limit; i++ {
		k, v := step()
		values = append(values, v)
		if first, ok := seen[k]; ok {
			return &Cycle{Start: first, Length: i - first, values: values}, nil
		}
		seen[k] = i
	}
	return nil, fmt.Errorf("%w after %d steps", ErrNoCycle, limit)
}

// Gain is how much the total grows over one cycle.
func (c *Cycle) Gain() int {
	return c.values[c.Start+c.Length] - c.values[c.Start]
}

// At returns the total after n steps.
func (c *Cycle) At(n int) int {
	if n < len(c.values) {
		return c.values[n]
	}
	full := (n - c.Start) / c.Length
	rem := (n - c.Start) % c.Length
	return c.values[c.Start+rem] + full*c.Gain()
}
