package rawarray

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the on-disk projection of an array's shape and type metadata.
// It has no independent lifecycle: it exists only transiently while
// encoding or decoding a file.
type Header struct {
	Flags  uint64
	Eltype ElementType
	Elbyte uint64
	Size   uint64   // data segment byte length; authoritative, never recomputed from Dims
	Dims   []uint64 // per-axis extent, axis 0 fastest-varying
}

// Ndims returns the dimension count.
func (h Header) Ndims() uint64 {
	return uint64(len(h.Dims))
}

// DataOffset returns the file offset where the data segment begins.
func (h Header) DataOffset() uint64 {
	return FixedHeaderSize + DimWordSize*h.Ndims()
}

// NumElements returns the product of the dimension extents. An empty
// dimension vector counts as a scalar with one element.
func (h Header) NumElements() uint64 {
	n := uint64(1)
	for _, d := range h.Dims {
		n *= d
	}
	return n
}

// SizeMatchesDims reports whether Size equals NumElements x Elbyte.
//
// The format deliberately does not enforce this: Size is ground truth and
// Dims may describe a logical shape that does not multiply out, e.g. for
// composite payloads. This helper is for callers that want the strict
// numeric-array interpretation anyway.
func (h Header) SizeMatchesDims() bool {
	return h.NumElements()*h.Elbyte == h.Size
}

// EncodeHeader serializes the header: the 48-byte fixed block followed by
// Ndims little-endian dimension words. Size is written as given; it is the
// caller's declaration of how many data bytes follow.
func EncodeHeader(h Header) ([]byte, error) {
	if !h.Eltype.Valid() {
		return nil, fmt.Errorf("%w: eltype %d outside 0..%d", ErrInvalidArgument, uint64(h.Eltype), uint64(BrainFloat))
	}
	if h.Elbyte == 0 {
		return nil, fmt.Errorf("%w: elbyte must be > 0", ErrInvalidArgument)
	}

	buf := make([]byte, h.DataOffset())
	le := binary.LittleEndian
	le.PutUint64(buf[0:8], Magic)
	le.PutUint64(buf[8:16], h.Flags)
	le.PutUint64(buf[16:24], uint64(h.Eltype))
	le.PutUint64(buf[24:32], h.Elbyte)
	le.PutUint64(buf[32:40], h.Size)
	le.PutUint64(buf[40:48], h.Ndims())
	for i, d := range h.Dims {
		le.PutUint64(buf[FixedHeaderSize+i*DimWordSize:], d)
	}
	return buf, nil
}

// Encode writes the serialized header to w.
func (h Header) Encode(w io.Writer) error {
	buf, err := EncodeHeader(h)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// DecodeHeader reads and validates a header from r. All structural checks
// happen here, before any data-segment byte is consumed: ErrBadMagic,
// ErrUnsupportedFlags, ErrInvalidEltype, ErrInvalidArgument (elbyte 0) and
// ErrDimensionOverflow. Unknown flag bits without the must-understand mark
// are accepted and carried through untouched.
//
// When the total stream length is unknown the dimension count is bounded
// by MaxDimensions; file-backed readers additionally bound it against the
// real file size.
func DecodeHeader(r io.Reader) (Header, error) {
	return decodeHeader(r, -1)
}

// decodeHeader parses a header. streamSize, when non-negative, is the total
// byte length of the stream including the fixed block, and tightens the
// dimension-count bound for corrupt-header protection.
func decodeHeader(r io.Reader, streamSize int64) (Header, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return Header{}, fmt.Errorf("failed to read fixed header: %w", err)
	}

	le := binary.LittleEndian
	if le.Uint64(fixed[0:8]) != Magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Flags:  le.Uint64(fixed[8:16]),
		Eltype: ElementType(le.Uint64(fixed[16:24])),
		Elbyte: le.Uint64(fixed[24:32]),
		Size:   le.Uint64(fixed[32:40]),
	}
	if bits := h.Flags & mustUnderstandFlags; bits != 0 {
		return Header{}, fmt.Errorf("%w: 0x%x", ErrUnsupportedFlags, bits)
	}
	if !h.Eltype.Valid() {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidEltype, uint64(h.Eltype))
	}
	if h.Elbyte == 0 {
		return Header{}, fmt.Errorf("%w: elbyte must be > 0", ErrInvalidArgument)
	}

	ndims := le.Uint64(fixed[40:48])
	if ndims > MaxDimensions {
		return Header{}, fmt.Errorf("%w: ndims %d > limit %d", ErrDimensionOverflow, ndims, MaxDimensions)
	}
	if streamSize >= 0 {
		avail := (streamSize - FixedHeaderSize) / DimWordSize
		if avail < 0 || ndims > uint64(avail) {
			return Header{}, fmt.Errorf("%w: ndims %d does not fit in %d-byte stream", ErrDimensionOverflow, ndims, streamSize)
		}
	}

	if ndims > 0 {
		dimBuf := make([]byte, ndims*DimWordSize)
		if _, err := io.ReadFull(r, dimBuf); err != nil {
			return Header{}, fmt.Errorf("failed to read dimension vector: %w", err)
		}
		h.Dims = make([]uint64, ndims)
		for i := range h.Dims {
			h.Dims[i] = le.Uint64(dimBuf[i*DimWordSize:])
		}
	}
	return h, nil
}
