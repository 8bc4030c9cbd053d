package felics

import "encoding/binary"

// splitChannels de-interleaves a row-major, channel-interleaved pixel
// buffer into one flat row-major sample slice per channel.
func splitChannels(pixels []byte, meta Metadata) [][]int32 {
	n := channelCount(meta.ColorType)
	bps := bytesPerSample(meta.Depth)
	total := int(meta.Width) * int(meta.Height)

	planes := make([][]int32, n)
	for c := range planes {
		planes[c] = make([]int32, total)
	}

	for i := 0; i < total; i++ {
		base := i * n * bps
		for c := 0; c < n; c++ {
			off := base + c*bps
			if bps == 1 {
				planes[c][i] = int32(pixels[off])
			} else {
				planes[c][i] = int32(binary.BigEndian.Uint16(pixels[off : off+2]))
			}
		}
	}

	return planes
}

// mergeChannels reinterleaves per-channel sample slices back into a
// single row-major pixel buffer, the inverse of splitChannels.
func mergeChannels(planes [][]int32, meta Metadata) []byte {
	n := channelCount(meta.ColorType)
	bps := bytesPerSample(meta.Depth)
	total := int(meta.Width) * int(meta.Height)

	pixels := make([]byte, total*n*bps)
	for i := 0; i < total; i++ {
		base := i * n * bps
		for c := 0; c < n; c++ {
			off := base + c*bps
			if bps == 1 {
				pixels[off] = byte(planes[c][i])
			} else {
				binary.BigEndian.PutUint16(pixels[off:off+2], uint16(planes[c][i]))
			}
		}
	}

	return pixels
}
