package bitio

import (
	"bytes"
	"testing"
)

func TestSinglePushAndPull(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	bits := []uint8{1, 1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0}
	for _, b := range bits {
		if err := sink.PushBit(b); err != nil {
			t.Fatalf("PushBit: %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	src := NewSource(bytes.NewReader(buf.Bytes()))
	for i, want := range bits {
		got, err := src.PullBit()
		if err != nil {
			t.Fatalf("PullBit at %d: %v", i, err)
		}
		if got != want {
			t.Errorf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestPushBits(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	if err := sink.PushBit(1); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBit(0); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBit(0); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBit(1); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBit(0); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBits(0b110100100110, 12); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}

	want := "10010110100100110"
	src := NewSource(bytes.NewReader(buf.Bytes()))
	got := make([]byte, 0, len(want))
	for i := 0; i < len(want); i++ {
		b, err := src.PullBit()
		if err != nil {
			t.Fatal(err)
		}
		if b == 1 {
			got = append(got, '1')
		} else {
			got = append(got, '0')
		}
	}
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPushBitsAcrossByteBoundary(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	if err := sink.PushBits(0b10100110, 8); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBits(0b0100101, 7); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBits(0b1101011110111010, 16); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}

	src := NewSource(bytes.NewReader(buf.Bytes()))
	total := len(buf.Bytes()) * 8
	var got []byte
	for i := 0; i < total; i++ {
		b, err := src.PullBit()
		if err != nil {
			t.Fatal(err)
		}
		if b == 1 {
			got = append(got, '1')
		} else {
			got = append(got, '0')
		}
	}

	core := "1010011001001011101011110111010"
	if string(got[:len(core)]) != core {
		t.Errorf("got %q, want prefix %q", got, core)
	}
	for i := len(core); i < len(got); i++ {
		if got[i] != '0' {
			t.Errorf("padding bit %d is not zero: %q", i, got)
		}
	}
}

func TestPullBitsReadsMultipleBytesInOrder(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := sink.PushBits(0b11000101001, 11); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBits(0b01110110110111010011101111010, 29); err != nil {
		t.Fatal(err)
	}
	if err := sink.PushBit(0); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}

	src := NewSource(bytes.NewReader(buf.Bytes()))
	checks := []struct {
		n    int
		want uint64
	}{
		{6, 0b110001},
		{5, 0b01001},
		{12, 0b011101101101},
		{17, 0b11010011101111010},
		{1, 0b0},
	}
	for i, c := range checks {
		got, err := src.PullBits(c.n)
		if err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
		if got != c.want {
			t.Errorf("check %d: got %b, want %b", i, got, c.want)
		}
	}
}

func TestFlushPadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := sink.PushBits(0b101, 3); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(buf.Bytes()) != 1 {
		t.Fatalf("expected exactly one padded byte, got %d", len(buf.Bytes()))
	}
	if buf.Bytes()[0] != 0b10100000 {
		t.Errorf("got %08b, want %08b", buf.Bytes()[0], 0b10100000)
	}
}

func TestPullPastEndOfStreamIsDistinctError(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := sink.PushBits(0b1, 1); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}

	src := NewSource(bytes.NewReader(buf.Bytes()))
	if _, err := src.PullBits(9); err == nil {
		t.Fatal("expected an error pulling past end of stream")
	}
}

func TestFlushIsIdempotentlyRejected(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := sink.Flush(); err != ErrFlushed {
		t.Errorf("expected ErrFlushed on second Flush, got %v", err)
	}
}
