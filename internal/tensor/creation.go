package tensor

import (
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[bool](Shape{3, 3}, true, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Uniform creates a float32 tensor with values drawn uniformly from [lo, hi).
//
// The random source is caller-supplied so that initialization is
// deterministic when the source is seeded. A nil source falls back to
// the package-global math/rand source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.Uniform[*cpu.CPUBackend](Shape{4, 4}, -1, 1, rng, backend)
func Uniform[B Backend](shape Shape, lo, hi float32, rng *rand.Rand, b B) *Tensor[float32, B] {
	t := Zeros[float32](shape, b)
	data := t.Data()
	span := float64(hi - lo)
	for i := range data {
		var u float64
		if rng != nil {
			u = rng.Float64()
		} else {
			u = rand.Float64() //nolint:gosec // G404: weight init is not security-critical
		}
		data[i] = lo + float32(u*span)
	}
	return t
}
