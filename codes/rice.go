// Package codes implements the two variable-length codes used by the
// codec: truncated/phased-in binary coding for uniform alphabets and
// Rice coding for geometric alphabets. Both are pure functions over
// bitio.Sink/bitio.Source.
package codes

import "github.com/visanalexandru/felics/bitio"

// RiceEncode writes the Rice code of n with parameter k: n>>k zeros
// followed by a one, then the low k bits of n, most significant first.
func RiceEncode(sink *bitio.Sink, n uint32, k uint8) error {
	quotient := n >> k
	for i := uint32(0); i < quotient; i++ {
		if err := sink.PushBit(0); err != nil {
			return err
		}
	}
	if err := sink.PushBit(1); err != nil {
		return err
	}
	if k > 0 {
		mask := uint32(1)<<k - 1
		if err := sink.PushBits(uint64(n&mask), int(k)); err != nil {
			return err
		}
	}
	return nil
}

// RiceDecode reads a Rice codeword with parameter k: it counts leading
// zeros up to the terminating one, reads k trailing bits, and
// reconstructs (quotient<<k)|remainder.
func RiceDecode(source *bitio.Source, k uint8) (uint32, error) {
	var quotient uint32
	for {
		bit, err := source.PullBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		quotient++
	}

	var remainder uint64
	if k > 0 {
		var err error
		remainder, err = source.PullBits(int(k))
		if err != nil {
			return 0, err
		}
	}

	return (quotient << k) | uint32(remainder), nil
}

// RiceLength returns the length in bits of the Rice code of n with
// parameter k, without encoding it.
func RiceLength(n uint32, k uint8) uint32 {
	return (n >> k) + 1 + uint32(k)
}
