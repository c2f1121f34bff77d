package directory

// ResolvePositions translates positions taken from a filtered view into
// full-list positions. index is the second result of View for the same query.
func ResolvePositions(opn string, positions, index []int) ([]int, error) {
	resolved := make([]int, 0, len(positions))

	for _, pos := range positions {
		if pos < 0 || pos >= len(index) {
			return nil, &OutOfRangeError{Op: opn, Index: pos, Len: len(index)}
		}
		resolved = append(resolved, index[pos])
	}

	return resolved, nil
}

// ResolveOffset translates a view insertion offset into a full-list one.
// An offset equal to the view length means "after the last visible record".
func ResolveOffset(opn string, offset int, index []int, fullLen int) (int, error) {
	switch {
	case offset < 0 || offset > len(index):
		return 0, &OutOfRangeError{Op: opn, Index: offset, Len: len(index) + 1}
	case offset < len(index):
		return index[offset], nil
	case len(index) == 0:
		return fullLen, nil
	default:
		return index[len(index)-1] + 1, nil
	}
}
