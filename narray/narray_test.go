package narray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/narray"
)

func TestEntryPointsFixRank(t *testing.T) {
	v, err := narray.Vector[float64](5).Zeros().Generate()
	require.NoError(t, err)
	assert.Equal(t, 1, v.Rank())
	assert.Equal(t, narray.Shape{5}, v.Shape())

	m, err := narray.Matrix[float64](2, 3).Zeros().Generate()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rank())

	c, err := narray.Cube[float64](2, 3, 4).Zeros().Generate()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rank())

	t4, err := narray.Tensor4[float64](2, 3, 4, 5).Zeros().Generate()
	require.NoError(t, err)
	assert.Equal(t, 4, t4.Rank())
	assert.Equal(t, 120, t4.NumElements())
}

func TestSizeIsShapeProduct(t *testing.T) {
	shapes := [][]int{{1}, {7}, {2, 3}, {4, 4}, {2, 3, 4}, {2, 2, 2, 2}}

	for _, dims := range shapes {
		s, err := narray.NewShape(dims...)
		require.NoError(t, err)

		want := 1
		for _, d := range dims {
			want *= d
		}
		assert.Equal(t, want, s.NumElements(), "shape %v", dims)
	}
}

func TestVectorSliceWindows(t *testing.T) {
	// x = [3, 1, 4, 1]
	x, err := narray.Vector[int](4).FullOf(0).Generate()
	require.NoError(t, err)
	for i, v := range []int{3, 1, 4, 1} {
		require.NoError(t, x.Set(v, i))
	}

	tests := []struct {
		name string
		span narray.Span
		want []int
	}{
		{name: "0..2", span: narray.Between(0, 2), want: []int{3, 1}},
		{name: "2..", span: narray.From(2), want: []int{4, 1}},
		{name: "..1", span: narray.To(1), want: []int{3}},
		{name: "..", span: narray.All(), want: []int{3, 1, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := x.Slice(tt.span)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Materialize().Data())
		})
	}
}

func TestMatrixRowColumn(t *testing.T) {
	m, err := narray.Matrix[int](3, 3).Range(0, 9).Generate()
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, row.Materialize().Data())

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 7}, col.Data())
}

func TestArithmeticSurface(t *testing.T) {
	a, err := narray.Matrix[float64](2, 2).Ones().Generate()
	require.NoError(t, err)
	b, err := narray.Matrix[float64](2, 2).FullOf(3).Generate()
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, sum.Data())

	wrong, err := narray.Vector[float64](4).Ones().Generate()
	require.NoError(t, err)
	_, err = a.Add(wrong)
	require.ErrorIs(t, err, narray.ErrShapeMismatch)
}

func TestTypedFailures(t *testing.T) {
	_, err := narray.Vector[float64](3).Range(4, 2).Generate()
	require.ErrorIs(t, err, narray.ErrConfig)

	v, err := narray.Vector[int](3).Ones().Generate()
	require.NoError(t, err)

	_, err = v.At(3)
	require.ErrorIs(t, err, narray.ErrIndexOutOfBounds)

	_, err = v.Slice(narray.Between(0, 4))
	require.ErrorIs(t, err, narray.ErrIndexOutOfBounds)
}
