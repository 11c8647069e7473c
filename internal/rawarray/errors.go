package rawarray

import "errors"

// Common errors. All parsing failures are detected at header-decode time
// except ErrTruncated, which surfaces while reading the data segment.
var (
	ErrBadMagic          = errors.New("bad magic: not a RawArray file")
	ErrUnsupportedFlags  = errors.New("unsupported must-understand flag bits")
	ErrInvalidEltype     = errors.New("element type tag outside defined set")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDimensionOverflow = errors.New("dimension count exceeds stream capacity")
	ErrTruncated         = errors.New("truncated file: data segment shorter than declared size")
)
