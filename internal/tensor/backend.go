package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set is exactly what scaled dot-product attention needs:
// projection and similarity (MatMul, Transpose), score scaling
// (MulScalar), masking (MaskedFill), normalization (Softmax), and
// head concatenation (Cat).
//
// Backends panic on programmer error (wrong rank, dtype, or shape);
// the attention layer validates inputs before dispatching, so callers
// of the public API see errors, never panics.
type Backend interface {
	// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose returns the 2D transpose of t.
	Transpose(t *RawTensor) *RawTensor

	// MulScalar multiplies every element of x by scalar.
	MulScalar(x *RawTensor, scalar float32) *RawTensor

	// MaskedFill writes value at every position where mask is true.
	// mask must be a Bool tensor with x's shape.
	MaskedFill(x, mask *RawTensor, value float32) *RawTensor

	// Softmax applies a numerically stable softmax along dim.
	Softmax(x *RawTensor, dim int) *RawTensor

	// Cat concatenates tensors along dim, preserving order.
	Cat(tensors []*RawTensor, dim int) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
