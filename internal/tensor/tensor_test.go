package tensor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	b := mockBackend{}

	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	b := mockBackend{}

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, b)
	require.Error(t, err)
}

func TestFromSlice_Bool(t *testing.T) {
	b := mockBackend{}

	m, err := FromSlice([]bool{true, false, false, true}, Shape{2, 2}, b)
	require.NoError(t, err)
	assert.Equal(t, Bool, m.DType())
	assert.True(t, m.At(0, 0))
	assert.False(t, m.At(0, 1))
}

func TestTensor_AtSet(t *testing.T) {
	b := mockBackend{}
	x := Zeros[float32](Shape{2, 3}, b)

	x.Set(7.5, 1, 2)
	assert.Equal(t, float32(7.5), x.At(1, 2))
	assert.Equal(t, float32(7.5), x.Data()[5], "row-major layout")

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestTensor_Clone(t *testing.T) {
	b := mockBackend{}
	x, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, b)
	require.NoError(t, err)

	y := x.Clone()
	y.Set(99, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0), "clone must not share memory")
}

func TestFull(t *testing.T) {
	b := mockBackend{}
	m := Full[bool](Shape{2, 2}, true, b)
	for _, v := range m.Data() {
		assert.True(t, v)
	}
}

func TestUniform_Deterministic(t *testing.T) {
	b := mockBackend{}

	x := Uniform(Shape{4, 4}, -1, 1, rand.New(rand.NewSource(7)), b)
	y := Uniform(Shape{4, 4}, -1, 1, rand.New(rand.NewSource(7)), b)
	assert.Equal(t, x.Data(), y.Data(), "same seed must give identical values")

	z := Uniform(Shape{4, 4}, -1, 1, rand.New(rand.NewSource(8)), b)
	assert.NotEqual(t, x.Data(), z.Data())
}

func TestUniform_Bounds(t *testing.T) {
	b := mockBackend{}

	x := Uniform(Shape{32, 32}, -0.5, 0.5, rand.New(rand.NewSource(1)), b)
	for _, v := range x.Data() {
		assert.GreaterOrEqual(t, v, float32(-0.5))
		assert.Less(t, v, float32(0.5))
	}
}

func TestNewRaw_InvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{0, 3}, Float32, CPU)
	require.Error(t, err)
}
