package cpu

import (
	"math"
	"testing"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

func TestSoftmax_RowsSumToOne(t *testing.T) {
	x := fromSlice(t, []float32{1, 2, 3, -1, 0, 1}, tensor.Shape{2, 3})

	w := x.Softmax(1).Data()

	for i := 0; i < 2; i++ {
		sum := float32(0)
		for j := 0; j < 3; j++ {
			sum += w[i*3+j]
		}
		if math.Abs(float64(sum-1.0)) > 1e-5 {
			t.Errorf("row %d sums to %v, want 1.0", i, sum)
		}
	}
}

func TestSoftmax_Ordering(t *testing.T) {
	x := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{1, 3})

	w := x.Softmax(1).Data()
	if !(w[0] < w[1] && w[1] < w[2]) {
		t.Errorf("weights %v not monotone in scores", w)
	}
}

func TestSoftmax_LargeMagnitudes(t *testing.T) {
	// A naive softmax overflows exp here; the stable form must not.
	x := fromSlice(t, []float32{1000, 1001, 1002, -1000, -999, -998}, tensor.Shape{2, 3})

	w := x.Softmax(1).Data()

	for i, v := range w {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("w[%d] = %v, not finite", i, v)
		}
	}
	// Both rows have the same relative offsets, so identical weights.
	for j := 0; j < 3; j++ {
		if math.Abs(float64(w[j]-w[3+j])) > 1e-6 {
			t.Errorf("rows differ at %d: %v vs %v", j, w[j], w[3+j])
		}
	}
}

func TestSoftmax_ConstantRowIsUniform(t *testing.T) {
	// All-equal scores (e.g. a fully masked attention row) come out uniform.
	x := fromSlice(t, []float32{-1e9, -1e9, -1e9, -1e9}, tensor.Shape{1, 4})

	w := x.Softmax(1).Data()
	for i, v := range w {
		if math.Abs(float64(v-0.25)) > 1e-6 {
			t.Errorf("w[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestSoftmax_Dim0(t *testing.T) {
	x := fromSlice(t, []float32{1, -1, 2, 0, 3, 1}, tensor.Shape{3, 2})

	w := x.Softmax(0).Data()

	for j := 0; j < 2; j++ {
		sum := float32(0)
		for i := 0; i < 3; i++ {
			sum += w[i*2+j]
		}
		if math.Abs(float64(sum-1.0)) > 1e-5 {
			t.Errorf("column %d sums to %v, want 1.0", j, sum)
		}
	}
}

func TestSoftmax_NegativeDim(t *testing.T) {
	x := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	a := x.Softmax(-1).Data()
	b := x.Softmax(1).Data()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Softmax(-1) != Softmax(1) at %d", i)
		}
	}
}
