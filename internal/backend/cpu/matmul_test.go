package cpu

import (
	"math"
	"testing"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

func fromSlice(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor[float32, *CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, New())
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return x
}

func TestMatMul_Known(t *testing.T) {
	// [1 2 3]   [7  8]   [58  64]
	// [4 5 6] @ [9 10] = [139 154]
	//           [11 12]
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	c := a.MatMul(b)

	want := []float32{58, 64, 139, 154}
	if !tensor.Shape([]int{2, 2}).Equal(c.Shape()) {
		t.Fatalf("shape = %v, want [2 2]", c.Shape())
	}
	for i, v := range c.Data() {
		if v != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestMatMul_Identity(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	eye := fromSlice(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})

	c := a.MatMul(eye)

	for i, v := range c.Data() {
		if v != a.Data()[i] {
			t.Errorf("c[%d] = %v, want %v", i, v, a.Data()[i])
		}
	}
}

func TestMatMul_LargeParallel(t *testing.T) {
	// Big enough for the row loop to actually fan out; verify against a
	// sequential reference.
	backend := New()
	m, k, n := 70, 30, 20

	a := make([]float32, m*k)
	b := make([]float32, k*n)
	for i := range a {
		a[i] = float32(i%7) - 3
	}
	for i := range b {
		b[i] = float32(i%5) - 2
	}

	at, _ := tensor.FromSlice(a, tensor.Shape{m, k}, backend)
	bt, _ := tensor.FromSlice(b, tensor.Shape{k, n}, backend)
	c := at.MatMul(bt).Data()

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var want float32
			for kk := 0; kk < k; kk++ {
				want += a[i*k+kk] * b[kk*n+j]
			}
			if got := c[i*n+j]; math.Abs(float64(got-want)) > 1e-4 {
				t.Fatalf("c[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestMatMul_ShapeMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for inner dimension mismatch, got none")
		}
	}()

	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3, 1})
	a.MatMul(b)
}

func BenchmarkMatMul(b *testing.B) {
	backend := New()
	a := tensor.Uniform(tensor.Shape{256, 256}, -1, 1, nil, backend)
	c := tensor.Uniform(tensor.Shape{256, 256}, -1, 1, nil, backend)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.MatMul(c)
	}
}
