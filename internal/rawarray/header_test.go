package rawarray

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// TestHeaderEncodeLayout verifies the exact byte layout of an encoded header.
func TestHeaderEncodeLayout(t *testing.T) {
	h := Header{Eltype: Float, Elbyte: 4, Size: 16, Dims: []uint64{4}}

	buf, err := EncodeHeader(h)
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}
	if len(buf) != FixedHeaderSize+DimWordSize {
		t.Fatalf("header length = %d, want %d", len(buf), FixedHeaderSize+DimWordSize)
	}

	le := binary.LittleEndian
	if got := le.Uint64(buf[0:8]); got != Magic {
		t.Errorf("magic = %#x, want %#x", got, Magic)
	}
	if got := le.Uint64(buf[8:16]); got != 0 {
		t.Errorf("flags = %d, want 0", got)
	}
	if got := le.Uint64(buf[16:24]); got != 3 {
		t.Errorf("eltype = %d, want 3", got)
	}
	if got := le.Uint64(buf[24:32]); got != 4 {
		t.Errorf("elbyte = %d, want 4", got)
	}
	if got := le.Uint64(buf[32:40]); got != 16 {
		t.Errorf("size = %d, want 16", got)
	}
	if got := le.Uint64(buf[40:48]); got != 1 {
		t.Errorf("ndims = %d, want 1", got)
	}
	if got := le.Uint64(buf[48:56]); got != 4 {
		t.Errorf("dims[0] = %d, want 4", got)
	}
}

// TestHeaderEncodeRejectsInvalidArguments covers encode-time validation.
func TestHeaderEncodeRejectsInvalidArguments(t *testing.T) {
	_, err := EncodeHeader(Header{Eltype: 6, Elbyte: 4})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("eltype 6: got %v, want ErrInvalidArgument", err)
	}

	_, err = EncodeHeader(Header{Eltype: Float, Elbyte: 0})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("elbyte 0: got %v, want ErrInvalidArgument", err)
	}
}

// TestDecodeHeaderRoundTrip verifies encode/decode symmetry including flags.
func TestDecodeHeaderRoundTrip(t *testing.T) {
	h := Header{Flags: FlagEncoded, Eltype: Complex, Elbyte: 8, Size: 96, Dims: []uint64{2, 6}}

	buf, err := EncodeHeader(h)
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}
	got, err := DecodeHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("DecodeHeader failed: %v", err)
	}

	if got.Flags != h.Flags || got.Eltype != h.Eltype || got.Elbyte != h.Elbyte || got.Size != h.Size {
		t.Errorf("decoded header = %+v, want %+v", got, h)
	}
	if len(got.Dims) != 2 || got.Dims[0] != 2 || got.Dims[1] != 6 {
		t.Errorf("dims = %v, want [2 6]", got.Dims)
	}
}

// TestDecodeHeaderBadMagic verifies rejection regardless of stream content.
func TestDecodeHeaderBadMagic(t *testing.T) {
	buf, err := EncodeHeader(Header{Eltype: Float, Elbyte: 4, Size: 4, Dims: []uint64{1}})
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}
	buf[0] ^= 0xFF

	_, err = DecodeHeader(bytes.NewReader(buf))
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("got %v, want ErrBadMagic", err)
	}

	// A stream of zeros is not a RawArray file either.
	_, err = DecodeHeader(bytes.NewReader(make([]byte, 64)))
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("zero stream: got %v, want ErrBadMagic", err)
	}
}

// TestDecodeHeaderInvalidEltype verifies rejection of reserved tags.
func TestDecodeHeaderInvalidEltype(t *testing.T) {
	buf, err := EncodeHeader(Header{Eltype: Float, Elbyte: 4, Size: 4, Dims: []uint64{1}})
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}
	binary.LittleEndian.PutUint64(buf[16:24], 6)

	_, err = DecodeHeader(bytes.NewReader(buf))
	if !errors.Is(err, ErrInvalidEltype) {
		t.Errorf("got %v, want ErrInvalidEltype", err)
	}
}

// TestDecodeHeaderUnknownFlagsAccepted verifies the pass-through policy:
// flag bits without the must-understand mark never fail a decode.
func TestDecodeHeaderUnknownFlagsAccepted(t *testing.T) {
	buf, err := EncodeHeader(Header{Flags: 0xFF, Eltype: Uint, Elbyte: 1, Size: 0})
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}

	h, err := DecodeHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("DecodeHeader failed: %v", err)
	}
	if h.Flags != 0xFF {
		t.Errorf("flags = %#x, want 0xFF carried through", h.Flags)
	}
}

// TestDecodeHeaderDimensionBomb verifies the corrupt-header allocation guard.
func TestDecodeHeaderDimensionBomb(t *testing.T) {
	buf, err := EncodeHeader(Header{Eltype: Float, Elbyte: 4, Size: 4, Dims: []uint64{1}})
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}

	// Implausible count with unknown stream length.
	binary.LittleEndian.PutUint64(buf[40:48], MaxDimensions+1)
	_, err = DecodeHeader(bytes.NewReader(buf))
	if !errors.Is(err, ErrDimensionOverflow) {
		t.Errorf("got %v, want ErrDimensionOverflow", err)
	}

	// Plausible count globally, but not for this stream's length.
	binary.LittleEndian.PutUint64(buf[40:48], 100)
	_, err = decodeHeader(bytes.NewReader(buf), int64(len(buf)))
	if !errors.Is(err, ErrDimensionOverflow) {
		t.Errorf("bounded stream: got %v, want ErrDimensionOverflow", err)
	}
}

// TestDecodeHeaderShortStream verifies short reads surface as I/O errors.
func TestDecodeHeaderShortStream(t *testing.T) {
	buf, err := EncodeHeader(Header{Eltype: Float, Elbyte: 4, Size: 8, Dims: []uint64{2}})
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}

	// Cut inside the fixed block.
	_, err = DecodeHeader(bytes.NewReader(buf[:20]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short fixed block: got %v, want io.ErrUnexpectedEOF", err)
	}

	// Cut inside the dimension vector.
	_, err = DecodeHeader(bytes.NewReader(buf[:FixedHeaderSize+3]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short dim vector: got %v, want io.ErrUnexpectedEOF", err)
	}
}

// TestHeaderSizeMatchesDims verifies the advisory consistency helper.
func TestHeaderSizeMatchesDims(t *testing.T) {
	dense := Header{Eltype: Float, Elbyte: 4, Size: 24, Dims: []uint64{2, 3}}
	if !dense.SizeMatchesDims() {
		t.Error("dense layout should match")
	}

	loose := Header{Eltype: User, Elbyte: 12, Size: 36, Dims: []uint64{5}}
	if loose.SizeMatchesDims() {
		t.Error("divergent layout should not match")
	}
	if loose.NumElements() != 5 {
		t.Errorf("NumElements = %d, want 5", loose.NumElements())
	}
	if loose.DataOffset() != 56 {
		t.Errorf("DataOffset = %d, want 56", loose.DataOffset())
	}
}
