package tensor

// mockBackend is a no-op Backend used by tests in this package.
// Creation and data-access paths only need Device(); compute ops are
// exercised against the real CPU backend in internal/backend/cpu.
type mockBackend struct{}

func (mockBackend) MatMul(_, _ *RawTensor) *RawTensor { panic("mock: not implemented") }

func (mockBackend) Transpose(_ *RawTensor) *RawTensor { panic("mock: not implemented") }

func (mockBackend) MulScalar(_ *RawTensor, _ float32) *RawTensor { panic("mock: not implemented") }

func (mockBackend) MaskedFill(_, _ *RawTensor, _ float32) *RawTensor { panic("mock: not implemented") }

func (mockBackend) Softmax(_ *RawTensor, _ int) *RawTensor { panic("mock: not implemented") }

func (mockBackend) Cat(_ []*RawTensor, _ int) *RawTensor { panic("mock: not implemented") }

func (mockBackend) Name() string { return "mock" }

func (mockBackend) Device() Device { return CPU }
