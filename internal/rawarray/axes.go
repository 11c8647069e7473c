package rawarray

import "fmt"

// The format's canonical order is column-major: axis 0 varies fastest in
// memory. A row-major environment adapts by reversing the axis list, either
// as a pure metadata operation (ReverseDims, RowMajorView) when it can
// consume arbitrary strides, or as a physical block transpose (PermuteAxes)
// when it cannot.

// View is a strided, zero-copy description of an array's layout. It never
// re-orders element addresses; it only labels them.
type View struct {
	Dims    []uint64
	Strides []uint64 // byte stride per axis
	Elbyte  uint64
	Data    []byte
}

// columnMajorStrides computes byte strides with axis 0 fastest-varying.
func columnMajorStrides(dims []uint64, elbyte uint64) []uint64 {
	strides := make([]uint64, len(dims))
	acc := elbyte
	for i, d := range dims {
		strides[i] = acc
		acc *= d
	}
	return strides
}

// ColumnMajorView returns the array's native layout as a strided view.
func (a *Array) ColumnMajorView() View {
	return View{
		Dims:    a.Dims(),
		Strides: columnMajorStrides(a.dims, a.elbyte),
		Elbyte:  a.elbyte,
		Data:    a.data,
	}
}

// RowMajorView returns the same bytes labelled in row-major axis order:
// dims and strides reversed, last axis fastest-varying. No data moves.
func (a *Array) RowMajorView() View {
	v := a.ColumnMajorView()
	reverseUint64(v.Dims)
	reverseUint64(v.Strides)
	return v
}

// Offset returns the byte offset of the element at idx.
func (v View) Offset(idx ...uint64) (uint64, error) {
	if len(idx) != len(v.Dims) {
		return 0, fmt.Errorf("%w: got %d indices for %d axes", ErrInvalidArgument, len(idx), len(v.Dims))
	}
	var off uint64
	for i, x := range idx {
		if x >= v.Dims[i] {
			return 0, fmt.Errorf("%w: index %d out of range for axis %d (extent %d)", ErrInvalidArgument, x, i, v.Dims[i])
		}
		off += x * v.Strides[i]
	}
	return off, nil
}

// At returns the elbyte-wide element block at idx.
func (v View) At(idx ...uint64) ([]byte, error) {
	off, err := v.Offset(idx...)
	if err != nil {
		return nil, err
	}
	if off+v.Elbyte > uint64(len(v.Data)) {
		return nil, fmt.Errorf("%w: element at byte offset %d past data end %d", ErrInvalidArgument, off, len(v.Data))
	}
	return v.Data[off : off+v.Elbyte], nil
}

// ReverseDims returns an array with the axis list reversed and the data
// buffer shared. A row-major [r, c] buffer and a column-major [c, r] buffer
// have identical byte layouts, so this is the whole write-path adaptation
// for environments that track the order convention themselves.
func (a *Array) ReverseDims() *Array {
	dims := a.Dims()
	reverseUint64(dims)
	return &Array{
		flags:  a.flags,
		eltype: a.eltype,
		elbyte: a.elbyte,
		dims:   dims,
		data:   a.data,
	}
}

// PermuteAxes materializes a physical transpose: element blocks of elbyte
// bytes are re-addressed according to the axis permutation. With no axes
// given the full reversal is applied, which converts between row-major and
// column-major element order.
//
// The result is a new array; the input is untouched. The source must be a
// dense numeric layout (Size == product(Dims) x Elbyte) for the sweep to be
// well defined.
func PermuteAxes(a *Array, axes ...int) (*Array, error) {
	ndim := len(a.dims)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("%w: %d axes for %d dimensions", ErrInvalidArgument, len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			return nil, fmt.Errorf("%w: axes %v is not a permutation of 0..%d", ErrInvalidArgument, axes, ndim-1)
		}
		seen[ax] = true
	}
	if !a.Header().SizeMatchesDims() {
		return nil, fmt.Errorf("%w: size %d does not match dims %v x elbyte %d; transpose undefined",
			ErrInvalidArgument, len(a.data), a.dims, a.elbyte)
	}

	newDims := make([]uint64, ndim)
	for i, ax := range axes {
		newDims[i] = a.dims[ax]
	}

	srcStrides := columnMajorStrides(a.dims, a.elbyte)
	out := make([]byte, len(a.data))
	elbyte := a.elbyte
	total := a.NumElements()

	// Index-remapping sweep: decompose each destination element's linear
	// position in column-major order over newDims, then gather from the
	// source through the permuted strides.
	idx := make([]uint64, ndim)
	for i := uint64(0); i < total; i++ {
		tmp := i
		for j := 0; j < ndim; j++ {
			idx[j] = tmp % newDims[j]
			tmp /= newDims[j]
		}
		var src uint64
		for j := 0; j < ndim; j++ {
			src += idx[j] * srcStrides[axes[j]]
		}
		copy(out[i*elbyte:(i+1)*elbyte], a.data[src:src+elbyte])
	}

	return &Array{
		flags:  a.flags,
		eltype: a.eltype,
		elbyte: a.elbyte,
		dims:   newDims,
		data:   out,
	}, nil
}

func reverseUint64(s []uint64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
