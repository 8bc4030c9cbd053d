// Package channel implements the per-channel FELICS coder: it walks a
// single row-major plane of samples, writing the first two verbatim and
// predicting every subsequent one from its two nearest visited
// neighbors, coded with a phased-in code when in range or a Rice code
// with an adaptively chosen parameter otherwise.
package channel

import (
	"errors"

	"github.com/visanalexandru/felics/bitio"
	"github.com/visanalexandru/felics/codes"
	"github.com/visanalexandru/felics/model"
	"github.com/visanalexandru/felics/predictor"
)

// ErrMalformedCodeword is returned when a decoded sample falls outside
// [0, Options.MaxValue] — either a Rice-coded below/above-range offset
// that overshoots the valid domain, or (defensively) a phase-in value
// outside its alphabet.
var ErrMalformedCodeword = errors.New("channel: decoded sample outside representable range")

// Options configures one channel's coding. Samples are always treated
// as a non-negative domain [0, MaxValue]; callers coding a signed
// channel (transformed chroma) are responsible for offsetting into
// and out of this domain.
type Options struct {
	SampleBits int     // width of the fixed verbatim encoding for the first two samples
	MaxValue   int32   // inclusive upper bound of every sample in this channel
	KValues    []uint8 // candidate Rice parameters, ascending
	HalveAt    uint32  // periodic count scaling threshold; 0 disables it
}

// Encode writes samples, a width*height row-major buffer, to sink.
//
// It panics if len(samples) < width*height: the caller is expected to
// have split pixels into correctly sized channel buffers already.
func Encode(sink *bitio.Sink, samples []int32, width, height int, opts Options) error {
	total := width * height
	if len(samples) < total {
		panic("channel: sample buffer smaller than width*height")
	}

	if err := sink.PushBits(uint64(samples[0]), opts.SampleBits); err != nil {
		return err
	}
	if total == 1 {
		return nil
	}
	if err := sink.PushBits(uint64(samples[1]), opts.SampleBits); err != nil {
		return err
	}

	selector := model.NewSelector(uint32(opts.MaxValue)+1, opts.KValues, opts.HalveAt)

	for i := 2; i < total; i++ {
		a, b, ok := predictor.Neighbors(i, width)
		if !ok {
			panic("channel: predictor reported no neighbors past the first two samples")
		}

		low, high, delta := predictor.Predict(int(samples[a]), int(samples[b]))
		p := int(samples[i])
		context := uint32(delta)

		switch {
		case p >= low && p <= high:
			if err := sink.PushBit(1); err != nil {
				return err
			}
			coder := codes.NewPhaseInCoder(uint32(delta) + 1)
			if err := coder.Encode(sink, uint32(p-low)); err != nil {
				return err
			}

		case p < low:
			if err := sink.PushBits(0b00, 2); err != nil {
				return err
			}
			k := selector.K(context)
			value := uint32(low - p - 1)
			if err := codes.RiceEncode(sink, value, k); err != nil {
				return err
			}
			selector.Update(context, value)

		default: // p > high
			if err := sink.PushBits(0b01, 2); err != nil {
				return err
			}
			k := selector.K(context)
			value := uint32(p - high - 1)
			if err := codes.RiceEncode(sink, value, k); err != nil {
				return err
			}
			selector.Update(context, value)
		}
	}
	return nil
}

// Decode reads a width*height row-major sample buffer from source,
// mirroring Encode.
func Decode(source *bitio.Source, width, height int, opts Options) ([]int32, error) {
	total := width * height
	samples := make([]int32, total)

	first, err := source.PullBits(opts.SampleBits)
	if err != nil {
		return nil, err
	}
	samples[0] = int32(first)
	if total == 1 {
		return samples, nil
	}

	second, err := source.PullBits(opts.SampleBits)
	if err != nil {
		return nil, err
	}
	samples[1] = int32(second)

	selector := model.NewSelector(uint32(opts.MaxValue)+1, opts.KValues, opts.HalveAt)

	for i := 2; i < total; i++ {
		a, b, ok := predictor.Neighbors(i, width)
		if !ok {
			panic("channel: predictor reported no neighbors past the first two samples")
		}

		low, high, delta := predictor.Predict(int(samples[a]), int(samples[b]))
		context := uint32(delta)

		inRange, err := source.PullBit()
		if err != nil {
			return nil, err
		}

		var p int
		if inRange == 1 {
			coder := codes.NewPhaseInCoder(uint32(delta) + 1)
			offset, err := coder.Decode(source)
			if err != nil {
				return nil, err
			}
			if offset > uint32(delta) {
				return nil, ErrMalformedCodeword
			}
			p = low + int(offset)
		} else {
			above, err := source.PullBit()
			if err != nil {
				return nil, err
			}

			k := selector.K(context)
			value, err := codes.RiceDecode(source, k)
			if err != nil {
				return nil, err
			}
			selector.Update(context, value)

			if above == 1 {
				p = high + int(value) + 1
			} else {
				p = low - int(value) - 1
			}
		}

		if p < 0 || p > int(opts.MaxValue) {
			return nil, ErrMalformedCodeword
		}
		samples[i] = int32(p)
	}
	return samples, nil
}
