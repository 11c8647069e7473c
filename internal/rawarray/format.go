package rawarray

import "strings"

// Format constants.
const (
	// Magic is the first 8 bytes of every RawArray file, the ASCII bytes
	// "rawarray" read as a little-endian uint64.
	Magic uint64 = 0x7961727261776172

	// FixedHeaderSize is the byte length of the fixed header block
	// preceding the dimension vector.
	FixedHeaderSize = 48

	// DimWordSize is the byte width of one dimension vector entry.
	DimWordSize = 8
)

// Flag bits defined by the format. No defined bit alters decoding behavior
// today; writers emit zero flags.
const (
	FlagBigEndian uint64 = 1 << 0 // reserved: big-endian data segment
	FlagEncoded   uint64 = 1 << 1 // reserved: run-length encoded integers
	FlagBits      uint64 = 1 << 2 // reserved: single-bit elements

	// mustUnderstandFlags marks flag bits a decoder may not ignore.
	// Currently none: every flag value passes through. The mask exists so
	// future bits can be promoted without changing the error contract.
	mustUnderstandFlags uint64 = 0
)

// Resource limits enforced when decoding untrusted headers.
const (
	// MaxDimensions bounds the declared dimension count when the stream
	// length is unknown. A corrupt ndims field must not drive an unbounded
	// dimension-vector allocation.
	MaxDimensions = 1 << 16

	// readChunkSize caps the incremental allocation step when reading a
	// data segment from a stream of unknown length.
	readChunkSize = 1 << 20
)

// FlagString renders the flag bitfield for diagnostics.
func FlagString(flags uint64) string {
	var parts []string
	if flags&FlagBigEndian != 0 {
		parts = append(parts, "BigEndian")
	} else {
		parts = append(parts, "LittleEndian")
	}
	if flags&FlagEncoded != 0 {
		parts = append(parts, "RLE")
	}
	if flags&FlagBits != 0 {
		parts = append(parts, "BitArray")
	}
	if unknown := flags &^ (FlagBigEndian | FlagEncoded | FlagBits); unknown != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, " ")
}
