package rawarray

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Decode reads one array from r: header, then exactly Size bytes of data.
// Bytes past the data segment (volatile metadata) are neither consumed nor
// reported. A data segment shorter than the declared Size fails with
// ErrTruncated.
//
// The stream length is unknown here, so a corrupt Size field cannot be
// bounded up front; the data segment is read in capped increments so the
// allocation never outruns the bytes actually present.
func Decode(r io.Reader) (*Array, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}
	data, err := readSegment(r, h.Size)
	if err != nil {
		return nil, err
	}
	return fromHeader(h, data), nil
}

// ReadFile reads one array from the file at path. The header's dimension
// count and declared data size are both bounded against the real file size
// before any allocation.
func ReadFile(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	r := bufio.NewReader(f)
	h, err := decodeHeader(r, info.Size())
	if err != nil {
		return nil, err
	}
	if h.Size > uint64(info.Size())-h.DataOffset() {
		return nil, fmt.Errorf("%w: declared size %d, %d bytes after header",
			ErrTruncated, h.Size, uint64(info.Size())-h.DataOffset())
	}

	data := make([]byte, h.Size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read data segment: %w", err)
	}
	return fromHeader(h, data), nil
}

// fromHeader assembles the caller-owned Array from decoded parts.
func fromHeader(h Header, data []byte) *Array {
	return &Array{
		flags:  h.Flags,
		eltype: h.Eltype,
		elbyte: h.Elbyte,
		dims:   h.Dims,
		data:   data,
	}
}

// readSegment reads exactly size bytes from r, growing the buffer in
// readChunkSize steps. io.EOF before size bytes maps to ErrTruncated.
func readSegment(r io.Reader, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	var data []byte
	for remaining := size; remaining > 0; {
		step := remaining
		if step > readChunkSize {
			step = readChunkSize
		}
		off := len(data)
		data = append(data, make([]byte, step)...)
		if _, err := io.ReadFull(r, data[off:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: declared size %d", ErrTruncated, size)
			}
			return nil, fmt.Errorf("failed to read data segment: %w", err)
		}
		remaining -= step
	}
	return data, nil
}
