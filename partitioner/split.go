package partitioner

import "github.com/lmarchetti/reachtube/vecbox"

// gridSplit partitions box into the cartesian product of counts[i]
// equal-width sub-intervals along axis i, returning every cell of
// the resulting grid as a *vecbox.Box.
func gridSplit(box *vecbox.Box, counts []int) []*vecbox.Box {
	dim := box.Dim()
	widths := make([]float64, dim)
	for i := 0; i < dim; i++ {
		widths[i] = (box.Hi[i] - box.Lo[i]) / float64(counts[i])
	}

	total := 1
	for _, k := range counts {
		total *= k
	}

	cells := make([]*vecbox.Box, 0, total)
	idx := make([]int, dim)
	for {
		lo := make([]float64, dim)
		hi := make([]float64, dim)
		for i := 0; i < dim; i++ {
			lo[i] = box.Lo[i] + float64(idx[i])*widths[i]
			hi[i] = lo[i] + widths[i]
		}
		cells = append(cells, &vecbox.Box{Lo: lo, Hi: hi})

		i := dim - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < counts[i] {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
	return cells
}

// longestAxis returns the index of box's widest dimension, breaking
// ties by the lowest index (spec §4.6).
func longestAxis(box *vecbox.Box) int {
	best, bestWidth := 0, box.Hi[0]-box.Lo[0]
	for i := 1; i < box.Dim(); i++ {
		w := box.Hi[i] - box.Lo[i]
		if w > bestWidth {
			best, bestWidth = i, w
		}
	}
	return best
}

// splitInHalf divides box into two boxes along axis, at its midpoint.
func splitInHalf(box *vecbox.Box, axis int) (*vecbox.Box, *vecbox.Box) {
	mid := (box.Lo[axis] + box.Hi[axis]) / 2

	lo1 := append([]float64(nil), box.Lo...)
	hi1 := append([]float64(nil), box.Hi...)
	hi1[axis] = mid

	lo2 := append([]float64(nil), box.Lo...)
	hi2 := append([]float64(nil), box.Hi...)
	lo2[axis] = mid

	return &vecbox.Box{Lo: lo1, Hi: hi1}, &vecbox.Box{Lo: lo2, Hi: hi2}
}
