// Package predictor computes the FELICS two-neighbor prediction: for
// each sample in a row-major channel buffer, the low/high bounds and
// range spanned by the two nearest already-visited neighbors.
package predictor

// Neighbors returns the flat indices of the two previously visited
// samples used to predict the sample at flat index i in a row-major
// buffer of the given width. Except along the top row and left column
// these are the sample above and the sample to the left.
//
// It returns ok=false when no two prior samples exist yet to predict
// from (the first two samples of the buffer, and, in single-column
// buffers, every row's first sample until a second row is available);
// those samples are written verbatim instead.
func Neighbors(i, width int) (a, b int, ok bool) {
	x := i % width
	y := i / width

	switch {
	case x > 0 && y > 0:
		return i - 1, i - width, true
	case y == 0:
		if x >= 2 {
			return i - 1, i - 2, true
		}
		return 0, 0, false
	case y >= 2:
		return i - width, i - 2*width, true
	case x+1 < width:
		return i - width, i - width + 1, true
	default:
		return 0, 0, false
	}
}

// Predict reduces the two neighbor sample values to low, high and the
// delta between them.
func Predict(a, b int) (low, high, delta int) {
	if a < b {
		low, high = a, b
	} else {
		low, high = b, a
	}
	return low, high, high - low
}
