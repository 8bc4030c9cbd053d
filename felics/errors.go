package felics

import (
	"errors"
	"fmt"
)

// Decompression errors. A caller can distinguish them with errors.Is;
// UnsupportedColorTypeError and UnsupportedDepthError additionally carry
// the offending byte via errors.As.
var (
	// ErrBadSignature is returned when the 4-byte magic at the start
	// of a stream does not read "FLCS".
	ErrBadSignature = errors.New("felics: bad signature")

	// ErrZeroDimension is returned when the header declares a width
	// or height of 0.
	ErrZeroDimension = errors.New("felics: width or height is zero")

	// ErrTruncated is returned when the underlying reader runs out of
	// bytes before the header or payload is fully read.
	ErrTruncated = errors.New("felics: truncated stream")

	// ErrMalformedCodeword is returned when a decoded sample falls
	// outside the range the header's depth allows, or a phase-in
	// index falls outside its alphabet.
	ErrMalformedCodeword = errors.New("felics: malformed codeword")

	// ErrInvalidInput is returned by Compress when the supplied pixel
	// buffer does not match width*height*channels*bytesPerSample for
	// the given metadata. This is a caller programming fault, not a
	// property of any encoded stream.
	ErrInvalidInput = errors.New("felics: pixel buffer does not match metadata")
)

// UnsupportedColorTypeError is returned when the header's color_type
// byte is not one of the values this decoder recognizes.
type UnsupportedColorTypeError struct {
	Value byte
}

func (e *UnsupportedColorTypeError) Error() string {
	return fmt.Sprintf("felics: unsupported color type %#02x", e.Value)
}

// UnsupportedDepthError is returned when the header's depth_code byte
// is not one of the values this decoder recognizes.
type UnsupportedDepthError struct {
	Value byte
}

func (e *UnsupportedDepthError) Error() string {
	return fmt.Sprintf("felics: unsupported depth code %#02x", e.Value)
}
