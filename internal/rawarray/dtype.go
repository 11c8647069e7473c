package rawarray

import "fmt"

// ElementType is the on-disk element category tag.
type ElementType uint64

// Element type tags defined by the format. Tags 6 and above are reserved.
const (
	User       ElementType = iota // caller-defined fixed-width record
	Int                           // signed integer
	Uint                          // unsigned integer
	Float                         // IEEE floating point
	Complex                       // complex floating point
	BrainFloat                    // bfloat16
)

// Valid reports whether the tag is one of the defined codes.
func (e ElementType) Valid() bool {
	return e <= BrainFloat
}

// String returns a human-readable name for the element type.
func (e ElementType) String() string {
	switch e {
	case User:
		return "user"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Complex:
		return "complex"
	case BrainFloat:
		return "bfloat"
	default:
		return fmt.Sprintf("reserved(%d)", uint64(e))
	}
}

// Scalar constrains Go types that map onto a RawArray element tag without a
// caller-supplied record layout.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// scalarKind returns the element tag and byte width for a Go scalar type.
func scalarKind[T Scalar](dummy T) (ElementType, uint64) {
	switch any(dummy).(type) {
	case int8:
		return Int, 1
	case int16:
		return Int, 2
	case int32:
		return Int, 4
	case int64:
		return Int, 8
	case uint8:
		return Uint, 1
	case uint16:
		return Uint, 2
	case uint32:
		return Uint, 4
	case uint64:
		return Uint, 8
	case float32:
		return Float, 4
	case float64:
		return Float, 8
	case complex64:
		return Complex, 8
	case complex128:
		return Complex, 16
	default:
		panic("unsupported scalar type")
	}
}
