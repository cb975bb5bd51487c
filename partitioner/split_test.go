package partitioner

import (
	"testing"

	"github.com/lmarchetti/reachtube/vecbox"
	"github.com/stretchr/testify/require"
)

func TestGridSplitProducesCartesianProduct(t *testing.T) {
	box := &vecbox.Box{Lo: []float64{0, 0}, Hi: []float64{2, 4}}
	cells := gridSplit(box, []int{2, 2})
	require.Len(t, cells, 4)
	for _, c := range cells {
		require.InDelta(t, 1.0, c.Hi[0]-c.Lo[0], 1e-9)
		require.InDelta(t, 2.0, c.Hi[1]-c.Lo[1], 1e-9)
	}
}

func TestLongestAxisBreaksTiesByLowestIndex(t *testing.T) {
	box := &vecbox.Box{Lo: []float64{0, 0}, Hi: []float64{1, 1}}
	require.Equal(t, 0, longestAxis(box))

	wide := &vecbox.Box{Lo: []float64{0, 0, 0}, Hi: []float64{1, 2, 1}}
	require.Equal(t, 1, longestAxis(wide))
}

func TestSplitInHalfCoversOriginalBox(t *testing.T) {
	box := &vecbox.Box{Lo: []float64{0, 0}, Hi: []float64{2, 2}}
	left, right := splitInHalf(box, 0)
	require.Equal(t, 1.0, left.Hi[0])
	require.Equal(t, 1.0, right.Lo[0])
	require.Equal(t, box.Hi[1], left.Hi[1])
	require.Equal(t, box.Hi[1], right.Hi[1])
}
