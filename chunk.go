package domscan

import (
	"math"
)

// TotalChunks returns the number of viewport-height slices covering the
// document, top to bottom.
func TotalChunks(m Metrics) int {
	if m.ViewportHeight <= 0 {
		return 0
	}
	return int(math.Ceil(m.DocumentHeight / m.ViewportHeight))
}

// ChunkList returns the chunk indices for the document in order.
func ChunkList(m Metrics) []int {
	chunks := make([]int, TotalChunks(m))
	for i := range chunks {
		chunks[i] = i
	}
	return chunks
}

// ChunkOffset returns the scroll offset of a chunk's top edge.
func ChunkOffset(chunk int, m Metrics) float64 {
	return float64(chunk) * m.ViewportHeight
}

// PickChunk selects the unseen chunk whose top offset is nearest to the
// current scroll position, ties going to the lower chunk. It returns the
// selected chunk together with the full chunk list. When every chunk has
// been seen it returns ENOTFOUND carrying the remaining-chunks list.
func PickChunk(seen []int, m Metrics) (int, []int, error) {
	chunks := ChunkList(m)

	seenSet := make(map[int]bool, len(seen))
	for _, c := range seen {
		seenSet[c] = true
	}

	best := -1
	bestDist := math.MaxFloat64
	remaining := []int{}
	for _, c := range chunks {
		if seenSet[c] {
			continue
		}
		remaining = append(remaining, c)
		if d := math.Abs(ChunkOffset(c, m) - m.ScrollY); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best < 0 {
		return 0, chunks, Errorf(ENOTFOUND, "no unseen chunks remaining: %v", remaining)
	}
	return best, chunks, nil
}
