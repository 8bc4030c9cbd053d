package codes

import (
	"fmt"
	"math/bits"

	"github.com/visanalexandru/felics/bitio"
)

// PhaseInCoder encodes and decodes values in the range [0, n-1] using a
// truncated/phased-in binary code: values near the middle of the range
// get the short, m-bit codewords, values near either end get the long,
// m+1-bit codewords, where m = floor(log2(n)).
type PhaseInCoder struct {
	n      uint32
	m      uint32
	leftP  uint32 // number of long codewords below the midpoint rotation
	rightP uint32 // number of short codewords
}

// NewPhaseInCoder constructs a phase-in coder for the range [0, n-1].
//
// It panics if n is 0: an alphabet of size zero has no codewords to
// assign, which can only happen from a caller bug (a well-formed image
// never produces Δ+1 == 0).
func NewPhaseInCoder(n uint32) *PhaseInCoder {
	if n == 0 {
		panic("codes: phase-in alphabet size must be positive")
	}

	m := uint32(bits.Len32(n) - 1)
	lpw := uint32(1) << m
	rpw := uint32(1) << (m + 1)

	return &PhaseInCoder{
		n:      n,
		m:      m,
		leftP:  n - lpw,
		rightP: rpw - n,
	}
}

// rotateRight maps the domain [0, n-1] so that the short codewords land
// at the low end, putting short codes near the middle of the original
// range.
func (c *PhaseInCoder) rotateRight(number uint32) uint32 {
	return (number + c.n - c.leftP) % c.n
}

func (c *PhaseInCoder) rotateLeft(number uint32) uint32 {
	return (number + c.leftP) % c.n
}

// Encode writes the phase-in code of number.
//
// It panics if number is outside [0, n-1]: this is only reachable from a
// caller bug, since P-L is always within [0, Δ] by construction.
func (c *PhaseInCoder) Encode(sink *bitio.Sink, number uint32) error {
	if number >= c.n {
		panic(fmt.Sprintf("codes: phase-in value %d out of range [0, %d)", number, c.n))
	}

	number = c.rotateRight(number)

	if number < c.rightP {
		return sink.PushBits(uint64(number), int(c.m))
	}

	pair := (number - c.rightP) / 2
	lastBit := (number - c.rightP) % 2
	toEncode := pair + c.rightP

	if err := sink.PushBits(uint64(toEncode), int(c.m)); err != nil {
		return err
	}
	return sink.PushBit(uint8(lastBit))
}

// Decode reads a phase-in code and returns the decoded value in [0, n-1].
func (c *PhaseInCoder) Decode(source *bitio.Source) (uint32, error) {
	firstM, err := source.PullBits(int(c.m))
	if err != nil {
		return 0, err
	}
	first := uint32(firstM)

	if first < c.rightP {
		return c.rotateLeft(first), nil
	}

	pair := first - c.rightP
	number := pair*2 + c.rightP

	bit, err := source.PullBit()
	if err != nil {
		return 0, err
	}
	if bit == 1 {
		number++
	}

	return c.rotateLeft(number), nil
}
