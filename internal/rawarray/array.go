package rawarray

import (
	"fmt"
	"unsafe"
)

// Array is an in-memory RawArray: an element-type tag, an element byte
// width, an ordered dimension vector (axis 0 fastest-varying) and an opaque
// data buffer. The buffer is owned exclusively by the Array; the codec never
// interprets its contents beyond byte-wise copying.
type Array struct {
	flags  uint64
	eltype ElementType
	elbyte uint64
	dims   []uint64
	data   []byte
}

// New constructs an Array. The dims slice is copied; the data slice is
// adopted as the array's buffer and must not be mutated by the caller
// afterwards. The data length is authoritative: it becomes the on-disk
// Size field and is never required to equal product(dims) x elbyte.
func New(eltype ElementType, elbyte uint64, dims []uint64, data []byte) (*Array, error) {
	if !eltype.Valid() {
		return nil, fmt.Errorf("%w: eltype %d outside 0..%d", ErrInvalidArgument, uint64(eltype), uint64(BrainFloat))
	}
	if elbyte == 0 {
		return nil, fmt.Errorf("%w: elbyte must be > 0", ErrInvalidArgument)
	}
	return &Array{
		eltype: eltype,
		elbyte: elbyte,
		dims:   append([]uint64(nil), dims...),
		data:   data,
	}, nil
}

// FromSlice builds a 1-D Array from a Go scalar slice. The element tag and
// byte width are inferred from T; the slice memory is adopted without
// copying.
func FromSlice[T Scalar](v []T) *Array {
	var dummy T
	eltype, elbyte := scalarKind(dummy)
	return &Array{
		eltype: eltype,
		elbyte: elbyte,
		dims:   []uint64{uint64(len(v))},
		data:   asBytes(v),
	}
}

// Flags returns the feature flag bitfield.
func (a *Array) Flags() uint64 { return a.flags }

// Eltype returns the element category tag.
func (a *Array) Eltype() ElementType { return a.eltype }

// Elbyte returns the byte width of one element.
func (a *Array) Elbyte() uint64 { return a.elbyte }

// Size returns the data segment length in bytes.
func (a *Array) Size() uint64 { return uint64(len(a.data)) }

// Ndims returns the dimension count.
func (a *Array) Ndims() uint64 { return uint64(len(a.dims)) }

// Dims returns a copy of the dimension vector.
func (a *Array) Dims() []uint64 { return append([]uint64(nil), a.dims...) }

// Data returns the raw data buffer. The slice aliases the array's storage.
func (a *Array) Data() []byte { return a.data }

// NumElements returns the product of the dimension extents.
func (a *Array) NumElements() uint64 {
	return a.Header().NumElements()
}

// Header builds the transient on-disk projection of the array's metadata.
func (a *Array) Header() Header {
	return Header{
		Flags:  a.flags,
		Eltype: a.eltype,
		Elbyte: a.elbyte,
		Size:   uint64(len(a.data)),
		Dims:   a.dims,
	}
}

// Reshape replaces the dimension vector with one describing the same
// element count. The data buffer is untouched.
func (a *Array) Reshape(dims []uint64) error {
	oldN := a.NumElements()
	newN := uint64(1)
	for _, d := range dims {
		newN *= d
	}
	if newN != oldN {
		return fmt.Errorf("%w: reshape %v -> %v changes element count %d -> %d",
			ErrInvalidArgument, a.dims, dims, oldN, newN)
	}
	a.dims = append([]uint64(nil), dims...)
	return nil
}

// Record returns the i-th elbyte-wide element block. For user-defined
// element types this is one opaque record; see RecordLayout for slicing
// its fields.
func (a *Array) Record(i uint64) ([]byte, error) {
	end := (i + 1) * a.elbyte
	if a.elbyte == 0 || end > uint64(len(a.data)) || end < a.elbyte {
		return nil, fmt.Errorf("%w: record %d out of range (elbyte %d, size %d)",
			ErrInvalidArgument, i, a.elbyte, len(a.data))
	}
	return a.data[i*a.elbyte : end], nil
}

// Equal reports bit-exact equality of all fields.
func (a *Array) Equal(b *Array) bool {
	if a.flags != b.flags || a.eltype != b.eltype || a.elbyte != b.elbyte {
		return false
	}
	if len(a.dims) != len(b.dims) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// String renders the array's metadata for diagnostics.
func (a *Array) String() string {
	return fmt.Sprintf("flags: %s\neltype: %s\nelbyte: %d\nsize: %d\nndims: %d\ndims: %v",
		FlagString(a.flags), a.eltype, a.elbyte, len(a.data), len(a.dims), a.dims)
}

// AsSlice reinterprets the data buffer as a Go scalar slice. The requested
// type must match the array's element tag and byte width exactly; the
// returned slice aliases the array's storage.
func AsSlice[T Scalar](a *Array) ([]T, error) {
	var dummy T
	eltype, elbyte := scalarKind(dummy)
	if a.eltype != eltype || a.elbyte != elbyte {
		return nil, fmt.Errorf("%w: array is %s/%d bytes, requested %s/%d bytes",
			ErrInvalidArgument, a.eltype, a.elbyte, eltype, elbyte)
	}
	if uint64(len(a.data))%elbyte != 0 {
		return nil, fmt.Errorf("%w: data length %d not a multiple of elbyte %d",
			ErrInvalidArgument, len(a.data), elbyte)
	}
	if len(a.data) == 0 {
		return nil, nil
	}
	//nolint:gosec // zero-copy reinterpretation, length derived from the buffer
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), uint64(len(a.data))/elbyte), nil
}

// asBytes reinterprets a scalar slice as its backing bytes.
func asBytes[T Scalar](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy reinterpretation, bounds follow from len(v)
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
}
