package rawarray

import "fmt"

// User-defined elements (eltype 0) are transported as opaque fixed-width
// records; the codec guarantees byte-wise delivery only. A RecordLayout is
// the caller-supplied field-offset table for slicing such a record, in
// place of any type-punning cast.

// RecordField names one byte window inside a fixed-width record.
type RecordField struct {
	Name   string
	Offset uint64
	Size   uint64
}

// RecordLayout describes the internal layout of one user-defined record of
// Size bytes. Fields may leave gaps (padding) but must stay in bounds.
type RecordLayout struct {
	Size   uint64
	Fields []RecordField
}

// Validate checks the layout's internal consistency.
func (l RecordLayout) Validate() error {
	if l.Size == 0 {
		return fmt.Errorf("%w: record size must be > 0", ErrInvalidArgument)
	}
	names := make(map[string]struct{}, len(l.Fields))
	for _, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: unnamed record field", ErrInvalidArgument)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("%w: duplicate record field %q", ErrInvalidArgument, f.Name)
		}
		names[f.Name] = struct{}{}
		if f.Size == 0 {
			return fmt.Errorf("%w: record field %q has zero size", ErrInvalidArgument, f.Name)
		}
		end := f.Offset + f.Size
		if end < f.Offset || end > l.Size {
			return fmt.Errorf("%w: record field %q [%d:%d) outside record of %d bytes",
				ErrInvalidArgument, f.Name, f.Offset, end, l.Size)
		}
	}
	return nil
}

// Field looks up a field by name.
func (l RecordLayout) Field(name string) (RecordField, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return RecordField{}, false
}

// Bytes slices the named field out of one record. The record must be
// exactly l.Size bytes; the returned slice aliases it.
func (l RecordLayout) Bytes(record []byte, name string) ([]byte, error) {
	if uint64(len(record)) != l.Size {
		return nil, fmt.Errorf("%w: record is %d bytes, layout expects %d", ErrInvalidArgument, len(record), l.Size)
	}
	f, ok := l.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: no record field %q", ErrInvalidArgument, name)
	}
	return record[f.Offset : f.Offset+f.Size], nil
}

// Extract slices the named field out of the array's i-th record. The array
// must carry user-defined elements whose width matches the layout.
func (l RecordLayout) Extract(a *Array, i uint64, name string) ([]byte, error) {
	if a.Eltype() != User {
		return nil, fmt.Errorf("%w: array eltype is %s, record layouts apply to user-defined elements",
			ErrInvalidArgument, a.Eltype())
	}
	if a.Elbyte() != l.Size {
		return nil, fmt.Errorf("%w: array elbyte %d does not match layout size %d",
			ErrInvalidArgument, a.Elbyte(), l.Size)
	}
	rec, err := a.Record(i)
	if err != nil {
		return nil, err
	}
	return l.Bytes(rec, name)
}
