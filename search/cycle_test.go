package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// synthetic returns the fingerprint after step i: distinct for i < 5,
// then repeating with period 3.
func synthetic(i int) int {
	if i < 5 {
		return 100 + i
	}
	return (i - 5) % 3
}

func gain(key int) int { return 2*key + 1 }

func TestDetectCycle(t *testing.T) {
	var i, total int
	c, err := DetectCycle(0, 1000, func() (int, int) {
		i++
		k := synthetic(i)
		total += gain(k)
		return k, total
	})
	require.NoError(t, err)
	assert.Equal(t, 5, c.Start)
	assert.Equal(t, 3, c.Length)
	assert.Equal(t, gain(0)+gain(1)+gain(2), c.Gain())

	brute := []int{0}
	for j := 1; j <= 200; j++ {
		brute = append(brute, brute[j-1]+gain(synthetic(j)))
	}
	for _, n := range []int{0, 1, 4, 5, 7, 8, 30, 31, 32, 33, 199, 200} {
		if got := c.At(n); got != brute[n] {
			t.Errorf("At(%d): got %d; want %d", n, got, brute[n])
		}
	}
}

func TestDetectCycleLimit(t *testing.T) {
	var i int
	_, err := DetectCycle(0, 50, func() (int, int) {
		i++
		return i, i
	})
	assert.ErrorIs(t, err, ErrNoCycle)
}
