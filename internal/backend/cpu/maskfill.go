package cpu

import (
	"fmt"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// MaskedFill writes value at every position where mask is true.
// x must be Float32 and mask a Bool tensor of the same shape.
func (cpu *CPUBackend) MaskedFill(x, mask *tensor.RawTensor, value float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("maskedfill: unsupported dtype %s", x.DType()))
	}
	if mask.DType() != tensor.Bool {
		panic(fmt.Sprintf("maskedfill: mask dtype is %s, expected bool", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("maskedfill: mask shape %v does not match input shape %v", mask.Shape(), x.Shape()))
	}

	result, err := tensor.NewRaw(x.Shape(), tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("maskedfill: failed to create result tensor: %v", err))
	}

	src := x.AsFloat32()
	m := mask.AsBool()
	dst := result.AsFloat32()
	for i := range src {
		if m[i] {
			dst[i] = value
		} else {
			dst[i] = src[i]
		}
	}

	return result
}
