// Package rawarray implements the RawArray (.ra) single-file container
// format for n-dimensional numeric arrays.
//
// A RawArray file maps exactly one array to one file with no metadata
// sidecar:
//
//	Format Structure (all integers uint64 little-endian):
//	  [8 bytes: Magic 0x7961727261776172 ("rawarray")]
//	  [8 bytes: Flags]
//	  [8 bytes: Eltype (0..5)]
//	  [8 bytes: Elbyte (element byte width, > 0)]
//	  [8 bytes: Size (data segment byte length)]
//	  [8 bytes: Ndims]
//	  [Ndims x 8 bytes: Dims, axis 0 fastest-varying (column-major)]
//	  [Size bytes: raw data segment]
//	  [anything after: volatile metadata, never read or written]
//
// The format supports:
//   - Signed/unsigned integers, IEEE floats, complex floats, bfloat16
//   - User-defined fixed-width records (eltype 0), transported opaquely
//   - Arbitrary dimension counts, including zero-extent axes
//   - Advisory dims: Size is authoritative and is never forced to equal
//     product(Dims) x Elbyte, so composite payloads stay legal
//
// The codec is host-native little-endian only; the big-endian flag bit is
// reserved for future negotiation. Integrity checking is delegated to
// external tools: the format carries no checksum or timestamp, so file
// identity depends only on its data.
//
// Example usage:
//
//	// Save an array
//	a := rawarray.FromSlice([]float32{1, 2, 3, 4})
//	if err := rawarray.WriteFile("myarray.ra", a); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back
//	a, err := rawarray.ReadFile("myarray.ra")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vals, _ := rawarray.AsSlice[float32](a)
package rawarray
