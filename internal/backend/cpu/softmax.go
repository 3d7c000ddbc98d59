package cpu

import (
	"fmt"
	"math"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// Softmax applies a numerically stable softmax along dim of a 2D tensor.
//
// The running maximum of each lane is subtracted before exponentiation.
// This is a correctness requirement, not an optimization: without it
// large scores overflow exp and produce Inf/NaN weights. A lane of
// identical values (for example, a fully masked attention row) comes
// out uniform.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("softmax: only 2D tensors supported, got %dD", len(shape)))
	}
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("softmax: unsupported dtype %s", x.DType()))
	}
	if dim < 0 {
		dim += 2
	}
	if dim != 0 && dim != 1 {
		panic("softmax: dimension out of range for 2D tensor")
	}

	result, err := tensor.NewRaw(shape, tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("softmax: failed to create result tensor: %v", err))
	}

	src := x.AsFloat32()
	dst := result.AsFloat32()
	rows, cols := shape[0], shape[1]

	// lanes run along dim; the other axis indexes independent lanes.
	laneLen, laneStride, numLanes, laneBase := cols, 1, rows, cols
	if dim == 0 {
		laneLen, laneStride, numLanes, laneBase = rows, cols, cols, 1
	}

	for lane := 0; lane < numLanes; lane++ {
		base := lane * laneBase

		maxVal := src[base]
		for i := 1; i < laneLen; i++ {
			if v := src[base+i*laneStride]; v > maxVal {
				maxVal = v
			}
		}

		sum := float32(0)
		for i := 0; i < laneLen; i++ {
			idx := base + i*laneStride
			e := float32(math.Exp(float64(src[idx] - maxVal)))
			dst[idx] = e
			sum += e
		}

		for i := 0; i < laneLen; i++ {
			dst[base+i*laneStride] /= sum
		}
	}

	return result
}
