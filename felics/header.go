package felics

import (
	"encoding/binary"
	"io"
)

const headerSize = 14

var signature = [4]byte{'F', 'L', 'C', 'S'}

// WriteHeader writes meta's 14-byte header to w.
func WriteHeader(w io.Writer, meta Metadata) error {
	var buf [headerSize]byte
	copy(buf[0:4], signature[:])
	buf[4] = byte(meta.ColorType)
	buf[5] = byte(meta.Depth)
	binary.BigEndian.PutUint32(buf[6:10], meta.Width)
	binary.BigEndian.PutUint32(buf[10:14], meta.Height)

	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads and validates the 14-byte header from r, returning
// the image's metadata. It never reads past the header, so a caller
// may continue reading the same r for the payload afterwards.
func ReadHeader(r io.Reader) (Metadata, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Metadata{}, mapReadError(err)
	}

	if buf[0] != signature[0] || buf[1] != signature[1] || buf[2] != signature[2] || buf[3] != signature[3] {
		return Metadata{}, ErrBadSignature
	}

	colorType := ColorType(buf[4])
	if colorType != Gray && colorType != RGB {
		return Metadata{}, &UnsupportedColorTypeError{Value: buf[4]}
	}

	depth := Depth(buf[5])
	if depth != Depth8 && depth != Depth16 {
		return Metadata{}, &UnsupportedDepthError{Value: buf[5]}
	}

	width := binary.BigEndian.Uint32(buf[6:10])
	height := binary.BigEndian.Uint32(buf[10:14])
	if width == 0 || height == 0 {
		return Metadata{}, ErrZeroDimension
	}

	return Metadata{ColorType: colorType, Depth: depth, Width: width, Height: height}, nil
}

func mapReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
