package sat

// lubySequence returns the i-th element (1-indexed: i must be >= 1) of the
// Luby sequence 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ..., the
// universal restart-interval schedule for randomized search.
func lubySequence(i int) int {
	k := 1
	for (1 << k) < i+1 {
		k++
	}
	if i+1 == (1 << k) {
		return 1 << (k - 1)
	}
	return lubySequence(i - (1 << (k - 1)) + 1)
}
