// Package felics implements a FELICS-derived lossless image codec: a
// self-describing byte stream built from a streaming bit coder, an
// adaptive per-context Rice-parameter model, and a reversible
// YCoCg-R color transform for RGB images.
package felics

import (
	"errors"
	"io"

	"github.com/visanalexandru/felics/bitio"
	"github.com/visanalexandru/felics/channel"
)

// ColorType identifies a pixel buffer's channel layout.
type ColorType byte

const (
	Gray ColorType = 0
	RGB  ColorType = 1
)

// Depth identifies a channel's raw sample width.
type Depth byte

const (
	Depth8  Depth = 0
	Depth16 Depth = 1
)

// Metadata describes an image's shape. It is immutable once
// constructed; Width and Height must both be positive.
type Metadata struct {
	ColorType ColorType
	Depth     Depth
	Width     uint32
	Height    uint32
}

func depthBits(d Depth) int {
	if d == Depth16 {
		return 16
	}
	return 8
}

func channelCount(c ColorType) int {
	if c == RGB {
		return 3
	}
	return 1
}

func bytesPerSample(d Depth) int {
	if d == Depth16 {
		return 2
	}
	return 1
}

func expectedPixelLength(meta Metadata) int {
	return int(meta.Width) * int(meta.Height) * channelCount(meta.ColorType) * bytesPerSample(meta.Depth)
}

// rawKSet is the candidate Rice parameter set for a raw channel of the
// given depth; the format fixes these values, they are not tuned at
// runtime.
func rawKSet(d Depth) []uint8 {
	if d == Depth16 {
		return []uint8{5, 6, 7, 8, 9, 10, 11}
	}
	return []uint8{0, 1, 2, 3, 4, 5}
}

// chromaKSet is the candidate set for a transformed Co/Cg channel,
// shifted up by one bit of depth relative to rawKSet.
func chromaKSet(d Depth) []uint8 {
	if d == Depth16 {
		return []uint8{6, 7, 8, 9, 10, 11, 12}
	}
	return []uint8{1, 2, 3, 4, 5, 6}
}

const contextHalveAt = 1024

func channelOptionsFor(meta Metadata) []channel.Options {
	bits := depthBits(meta.Depth)
	rawMax := int32(1)<<uint(bits) - 1

	luma := channel.Options{
		SampleBits: bits,
		MaxValue:   rawMax,
		KValues:    rawKSet(meta.Depth),
		HalveAt:    contextHalveAt,
	}

	if meta.ColorType == Gray {
		return []channel.Options{luma}
	}

	chromaBits := bits + 1
	chromaMax := int32(1)<<uint(chromaBits) - 1
	chroma := channel.Options{
		SampleBits: chromaBits,
		MaxValue:   chromaMax,
		KValues:    chromaKSet(meta.Depth),
		HalveAt:    contextHalveAt,
	}

	return []channel.Options{luma, chroma, chroma}
}

func mapChannelError(err error) error {
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return ErrTruncated
	case errors.Is(err, channel.ErrMalformedCodeword):
		return ErrMalformedCodeword
	default:
		return err
	}
}

// Compress writes meta's header followed by the FELICS-coded payload
// of pixels to w. pixels must be a row-major, channel-interleaved
// buffer of exactly width*height*channels*bytesPerSample bytes;
// otherwise Compress returns ErrInvalidInput without writing anything.
func Compress(meta Metadata, pixels []byte, w io.Writer) error {
	if meta.Width == 0 || meta.Height == 0 {
		return ErrInvalidInput
	}
	if len(pixels) != expectedPixelLength(meta) {
		return ErrInvalidInput
	}

	if err := WriteHeader(w, meta); err != nil {
		return err
	}

	planes := splitChannels(pixels, meta)
	if meta.ColorType == RGB {
		planes = forwardTransform(planes[0], planes[1], planes[2], meta.Depth)
	}

	sink := bitio.NewSink(w)
	width, height := int(meta.Width), int(meta.Height)

	for i, opts := range channelOptionsFor(meta) {
		if err := channel.Encode(sink, planes[i], width, height, opts); err != nil {
			return err
		}
	}

	return sink.Flush()
}

// Decompress reads a FELICS stream from r and returns its metadata
// and decoded pixel buffer, in the same row-major, channel-interleaved
// layout Compress expects.
func Decompress(r io.Reader) (Metadata, []byte, error) {
	meta, err := ReadHeader(r)
	if err != nil {
		return Metadata{}, nil, err
	}

	width, height := int(meta.Width), int(meta.Height)
	source := bitio.NewSource(r)

	opts := channelOptionsFor(meta)
	planes := make([][]int32, len(opts))
	for i, o := range opts {
		p, err := channel.Decode(source, width, height, o)
		if err != nil {
			return Metadata{}, nil, mapChannelError(err)
		}
		planes[i] = p
	}

	if meta.ColorType == RGB {
		planes = inverseTransform(planes[0], planes[1], planes[2], meta.Depth)
	}

	return meta, mergeChannels(planes, meta), nil
}
