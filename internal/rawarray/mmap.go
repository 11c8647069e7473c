package rawarray

import (
	"bytes"
	"fmt"
	"os"
)

// MmapReader provides zero-copy access to a RawArray file. The header is
// validated against the true file size on open; the data segment is served
// straight from the mapping, and trailing volatile metadata stays unread.
//
// Always Close the reader when done to unmap the file.
type MmapReader struct {
	file   *os.File
	mapped []byte
	header Header
	closed bool
}

// OpenMmap memory-maps the file at path read-only and validates its header.
func OpenMmap(path string) (*MmapReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() < FixedHeaderSize {
		_ = f.Close()
		return nil, fmt.Errorf("%w: file is %d bytes, fixed header needs %d", ErrTruncated, info.Size(), FixedHeaderSize)
	}

	mapped, err := mmapFile(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	r := &MmapReader{file: f, mapped: mapped}
	h, err := decodeHeader(bytes.NewReader(mapped), info.Size())
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	if h.Size > uint64(len(mapped))-h.DataOffset() {
		declared, present := h.Size, uint64(len(mapped))-h.DataOffset()
		_ = r.Close()
		return nil, fmt.Errorf("%w: declared size %d, %d bytes after header", ErrTruncated, declared, present)
	}
	r.header = h
	return r, nil
}

// Header returns the decoded header.
func (r *MmapReader) Header() Header {
	return r.header
}

// Data returns the data segment as a subslice of the mapping. It is
// read-only and valid only until Close.
func (r *MmapReader) Data() []byte {
	off := r.header.DataOffset()
	return r.mapped[off : off+r.header.Size]
}

// Array copies the data segment out of the mapping and returns a
// caller-owned Array that outlives the reader.
func (r *MmapReader) Array() (*Array, error) {
	if r.closed {
		return nil, fmt.Errorf("%w: reader is closed", ErrInvalidArgument)
	}
	data := make([]byte, r.header.Size)
	copy(data, r.Data())
	return fromHeader(r.header, data), nil
}

// Close unmaps the file and closes it.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var first error
	if len(r.mapped) > 0 {
		if err := munmapFile(r.mapped); err != nil {
			first = err
		}
		r.mapped = nil
	}
	if err := r.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
