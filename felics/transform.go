package felics

import "github.com/visanalexandru/felics/colortransform"

// forwardTransform applies the YCoCg-R transform channel-wise and
// offsets Co/Cg by 2^depth so every sample handed to the channel coder
// is non-negative. The offset is format-defined and must be reversed
// by inverseTransform before the inverse color transform runs.
func forwardTransform(r, g, b []int32, depth Depth) [][]int32 {
	n := len(r)
	y := make([]int32, n)
	co := make([]int32, n)
	cg := make([]int32, n)

	offset := int32(1) << uint(depthBits(depth))
	for i := 0; i < n; i++ {
		yy, cco, ccg := colortransform.Forward(r[i], g[i], b[i])
		y[i] = yy
		co[i] = cco + offset
		cg[i] = ccg + offset
	}

	return [][]int32{y, co, cg}
}

// inverseTransform reverses forwardTransform.
func inverseTransform(y, co, cg []int32, depth Depth) [][]int32 {
	n := len(y)
	r := make([]int32, n)
	g := make([]int32, n)
	b := make([]int32, n)

	offset := int32(1) << uint(depthBits(depth))
	for i := 0; i < n; i++ {
		rr, gg, bb := colortransform.Inverse(y[i], co[i]-offset, cg[i]-offset)
		r[i] = rr
		g[i] = gg
		b[i] = bb
	}

	return [][]int32{r, g, b}
}
