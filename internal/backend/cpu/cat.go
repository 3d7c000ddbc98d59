package cpu

import (
	"fmt"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// Cat concatenates tensors along dim, preserving argument order.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	// All shapes must match outside the concat dimension.
	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// outer: elements before dim; inner: bytes per element run after dim.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	innerBytes := dtype.Size()
	for d := dim + 1; d < ndim; d++ {
		innerBytes *= shape[d]
	}

	dst := result.Data()
	rowBytes := totalDim * innerBytes
	offset := 0
	for _, t := range tensors {
		tBytes := t.Shape()[dim] * innerBytes
		src := t.Data()
		for o := 0; o < outer; o++ {
			copy(dst[o*rowBytes+offset:o*rowBytes+offset+tBytes], src[o*tBytes:(o+1)*tBytes])
		}
		offset += tBytes
	}

	return result
}
