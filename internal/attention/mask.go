package attention

import (
	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// CausalMask creates an autoregressive attention mask of shape (n, n):
// true (forbidden) above the diagonal, so each position attends only to
// itself and earlier positions.
//
// For n = 4 (F = false/allowed, T = true/forbidden):
//
//	[[F, T, T, T],
//	 [F, F, T, T],
//	 [F, F, F, T],
//	 [F, F, F, F]]
func CausalMask[B tensor.Backend](n int, backend B) *tensor.Tensor[bool, B] {
	mask := tensor.Zeros[bool](tensor.Shape{n, n}, backend)
	data := mask.Data()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[i*n+j] = true
		}
	}
	return mask
}

// PaddingMask creates a mask of shape (nq, nk) forbidding attention to
// key positions at or beyond validLen, i.e. padding tokens appended to
// a batch-aligned key/value sequence.
func PaddingMask[B tensor.Backend](nq, nk, validLen int, backend B) *tensor.Tensor[bool, B] {
	mask := tensor.Zeros[bool](tensor.Shape{nq, nk}, backend)
	data := mask.Data()
	for i := 0; i < nq; i++ {
		for j := validLen; j < nk; j++ {
			data[i*nk+j] = true
		}
	}
	return mask
}
