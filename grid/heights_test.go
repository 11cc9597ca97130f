package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forest = []string{
	"30373",
	"25512",
	"65332",
	"33549",
	"35390",
}

func TestHeightsScenario(t *testing.T) {
	h, err := ParseDigits(forest)
	require.NoError(t, err)

	var border int
	for row := 0; row < h.Rows(); row++ {
		for col := 0; col < h.Cols(); col++ {
			if row == 0 || col == 0 || row == h.Rows()-1 || col == h.Cols()-1 {
				border++
				assert.True(t, h.VisibleFromEdge(C(row, col)))
			}
		}
	}
	assert.Equal(t, 16, border)
	assert.Equal(t, 21, h.CountVisible())

	// (3, 2) is the 5 that sees 2, 2, 1, 2 trees.
	for _, tt := range []struct {
		d    Dir
		want int
	}{
		{North, 2},
		{West, 2},
		{South, 1},
		{East, 2},
	} {
		n, _ := h.ViewDistance(C(3, 2), tt.d)
		assert.Equal(t, tt.want, n, "direction %s", tt.d)
	}
	assert.Equal(t, 8, h.ScenicScore(C(3, 2)))
	assert.Equal(t, 8, h.BestScenicScore())

	assert.Equal(t, 0, h.ScenicScore(C(0, 2)))
	assert.False(t, h.VisibleFromEdge(C(1, 3)))
}

func TestParseDigitsErrors(t *testing.T) {
	_, err := ParseDigits(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = ParseDigits([]string{"123", "12"})
	assert.Error(t, err)
	_, err = ParseDigits([]string{"12a"})
	assert.Error(t, err)
}
