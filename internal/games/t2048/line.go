package t2048

// MergeLine slides and merges a single line toward index 0.
// Returns the updated line and the score gained from merges.
//
// Each tile takes part in at most one merge: after two tiles combine the scan
// skips past the consumed neighbor, so [2 2 2 2] becomes [4 4 _ _], not [8 _ _ _].
func MergeLine(line Line) (result Line, score int) {
	// Compaction
	var tiles [Size]int
	n := 0
	for _, v := range line {
		if v != 0 {
			tiles[n] = v
			n++
		}
	}

	writePos := 0
	for i := 0; i < n; i++ {
		if i+1 < n && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result[writePos] = merged
			score += merged
			i++ // consumed
		} else {
			result[writePos] = tiles[i]
		}
		writePos++
	}

	return result, score
}
