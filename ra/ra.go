package ra

import (
	"io"

	"github.com/rawarray-io/rawarray/internal/rawarray"
)

// Type aliases for the public API.

// Array is an in-memory RawArray: element tag, element byte width,
// dimension vector and an exclusively-owned data buffer.
type Array = rawarray.Array

// Header is the transient on-disk projection of an array's metadata.
type Header = rawarray.Header

// ElementType is the on-disk element category tag.
type ElementType = rawarray.ElementType

// Element type tags defined by the format.
const (
	User       ElementType = rawarray.User
	Int        ElementType = rawarray.Int
	Uint       ElementType = rawarray.Uint
	Float      ElementType = rawarray.Float
	Complex    ElementType = rawarray.Complex
	BrainFloat ElementType = rawarray.BrainFloat
)

// Scalar constrains Go types with a native RawArray element tag.
type Scalar = rawarray.Scalar

// View is a strided, zero-copy labelling of an array's layout.
type View = rawarray.View

// RecordLayout describes the field layout of one user-defined record.
type RecordLayout = rawarray.RecordLayout

// RecordField names one byte window inside a record.
type RecordField = rawarray.RecordField

// MmapReader provides zero-copy access to a RawArray file.
type MmapReader = rawarray.MmapReader

// Format constants.
const (
	Magic           = rawarray.Magic
	FixedHeaderSize = rawarray.FixedHeaderSize
	MaxDimensions   = rawarray.MaxDimensions

	FlagBigEndian = rawarray.FlagBigEndian
	FlagEncoded   = rawarray.FlagEncoded
	FlagBits      = rawarray.FlagBits
)

// Common errors.
var (
	ErrBadMagic          = rawarray.ErrBadMagic
	ErrUnsupportedFlags  = rawarray.ErrUnsupportedFlags
	ErrInvalidEltype     = rawarray.ErrInvalidEltype
	ErrInvalidArgument   = rawarray.ErrInvalidArgument
	ErrDimensionOverflow = rawarray.ErrDimensionOverflow
	ErrTruncated         = rawarray.ErrTruncated
)

// New constructs an Array from explicit metadata and an adopted data
// buffer. The data length is authoritative and is never required to equal
// product(dims) x elbyte.
func New(eltype ElementType, elbyte uint64, dims []uint64, data []byte) (*Array, error) {
	return rawarray.New(eltype, elbyte, dims, data)
}

// FromSlice builds a 1-D Array from a Go scalar slice, inferring the
// element tag and byte width from T.
//
// Example:
//
//	a := ra.FromSlice([]complex64{1 + 2i, 3 - 4i})
func FromSlice[T Scalar](v []T) *Array {
	return rawarray.FromSlice(v)
}

// AsSlice reinterprets an array's buffer as a Go scalar slice. The type
// must match the array's element tag and byte width exactly.
func AsSlice[T Scalar](a *Array) ([]T, error) {
	return rawarray.AsSlice[T](a)
}

// Encode writes the array to w: header, then the raw data segment.
func Encode(w io.Writer, a *Array) error {
	return rawarray.Encode(w, a)
}

// Decode reads one array from r. Bytes past the data segment are neither
// consumed nor reported.
func Decode(r io.Reader) (*Array, error) {
	return rawarray.Decode(r)
}

// WriteFile writes the array to a file at path, creating or replacing it.
func WriteFile(path string, a *Array) error {
	return rawarray.WriteFile(path, a)
}

// ReadFile reads one array from the file at path, bounding all declared
// header quantities against the real file size before allocating.
func ReadFile(path string) (*Array, error) {
	return rawarray.ReadFile(path)
}

// EncodeHeader serializes a header to its on-disk bytes.
func EncodeHeader(h Header) ([]byte, error) {
	return rawarray.EncodeHeader(h)
}

// DecodeHeader reads and validates a header from r without touching the
// data segment.
func DecodeHeader(r io.Reader) (Header, error) {
	return rawarray.DecodeHeader(r)
}

// PermuteAxes materializes a physical transpose; with no axes given it
// reverses the axis order, converting between row-major and column-major
// element order.
func PermuteAxes(a *Array, axes ...int) (*Array, error) {
	return rawarray.PermuteAxes(a, axes...)
}

// OpenMmap memory-maps the file at path read-only and validates its
// header. Close the reader to unmap.
func OpenMmap(path string) (*MmapReader, error) {
	return rawarray.OpenMmap(path)
}

// FlagString renders a flag bitfield for diagnostics.
func FlagString(flags uint64) string {
	return rawarray.FlagString(flags)
}
