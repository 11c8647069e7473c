// Package ra is the public API for reading and writing RawArray (.ra)
// files.
//
// # Overview
//
// A RawArray is a minimal but complete file format for saving one
// n-dimensional numeric array to one file and restoring it later with all
// of its properties intact: no container hierarchy, no metadata sidecar,
// and native complex-number support. The file system is the hierarchy.
//
// The standard file extension is .ra.
//
// # Quick Start
//
//	a := ra.FromSlice([]float32{1.0, 2.0, 3.0, 4.0})
//	if err := ra.WriteFile("myarray.ra", a); err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := ra.ReadFile("myarray.ra")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vals, _ := ra.AsSlice[float32](b) // [1 2 3 4]
//
// # Axis Order
//
// The format is column-major: axis 0 varies fastest in memory. Row-major
// callers adapt with Array.ReverseDims (pure metadata, no copying) or
// Array.RowMajorView (strided view); PermuteAxes materializes a physical
// transpose when a canonical-order copy is required.
//
// # User-Defined Elements
//
// Element type tag 0 transports opaque fixed-width records. Their internal
// layout is the caller's business: describe it with a RecordLayout
// field-offset table and slice fields out with Extract.
//
// # Integrity
//
// The format carries no checksum or timestamp, so a file's identity
// depends only on its data. Pair it with external checksumming tools when
// integrity guarantees are needed.
package ra
