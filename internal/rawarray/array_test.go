package rawarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSliceInfersKind(t *testing.T) {
	cases := []struct {
		a      *Array
		eltype ElementType
		elbyte uint64
	}{
		{FromSlice([]int8{1}), Int, 1},
		{FromSlice([]int16{1}), Int, 2},
		{FromSlice([]int32{1}), Int, 4},
		{FromSlice([]int64{1}), Int, 8},
		{FromSlice([]uint8{1}), Uint, 1},
		{FromSlice([]uint16{1}), Uint, 2},
		{FromSlice([]uint32{1}), Uint, 4},
		{FromSlice([]uint64{1}), Uint, 8},
		{FromSlice([]float32{1}), Float, 4},
		{FromSlice([]float64{1}), Float, 8},
		{FromSlice([]complex64{1}), Complex, 8},
		{FromSlice([]complex128{1}), Complex, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.eltype, c.a.Eltype())
		assert.Equal(t, c.elbyte, c.a.Elbyte())
		assert.Equal(t, []uint64{1}, c.a.Dims())
		assert.Equal(t, c.elbyte, c.a.Size())
	}
}

func TestNewValidatesArguments(t *testing.T) {
	_, err := New(6, 4, []uint64{1}, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = New(Float, 0, []uint64{1}, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	a, err := New(BrainFloat, 2, []uint64{3}, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, BrainFloat, a.Eltype())
	assert.Equal(t, uint64(6), a.Size())
}

func TestAsSliceTypeChecks(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3})

	got, err := AsSlice[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, got)

	// Wrong width, same tag.
	_, err = AsSlice[float64](a)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Wrong tag, same width.
	_, err = AsSlice[int32](a)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// AsSlice aliases storage: writes are visible through the array.
	got[0] = 99
	assert.Equal(t, float32(99), mustAsSlice[float32](t, a)[0])
}

func TestReshape(t *testing.T) {
	a := FromSlice([]uint16{1, 0, 1, 0})
	require.Equal(t, []uint64{4}, a.Dims())

	require.NoError(t, a.Reshape([]uint64{2, 2}))
	assert.Equal(t, []uint64{2, 2}, a.Dims())
	assert.Equal(t, uint64(4), a.NumElements())

	err := a.Reshape([]uint64{3, 2})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []uint64{2, 2}, a.Dims(), "failed reshape must not alter dims")
}

func TestRecordAccess(t *testing.T) {
	a, err := New(User, 3, []uint64{2}, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	rec, err := a.Record(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5, 6}, rec)

	_, err = a.Record(2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArrayEqual(t *testing.T) {
	a := FromSlice([]int32{1, 2})
	b := FromSlice([]int32{1, 2})
	assert.True(t, a.Equal(b))

	c := FromSlice([]int32{1, 3})
	assert.False(t, a.Equal(c))

	d := FromSlice([]uint32{1, 2})
	assert.False(t, a.Equal(d), "eltype must participate in equality")

	require.NoError(t, b.Reshape([]uint64{2, 1}))
	assert.False(t, a.Equal(b), "dims must participate in equality")
}

func mustAsSlice[T Scalar](t *testing.T, a *Array) []T {
	t.Helper()
	s, err := AsSlice[T](a)
	require.NoError(t, err)
	return s
}
