package attention

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// MultiHeadAttention owns a fixed-size, ordered collection of
// independent attention heads and concatenates their outputs along the
// feature axis.
//
// Heads share hyperparameters but not weights; each reads only its own
// projections and the shared read-only inputs, so they are evaluated
// concurrently and joined before concatenation. Concatenation order is
// construction order regardless of completion order.
type MultiHeadAttention[B tensor.Backend] struct {
	heads   []*Head[B]
	config  Config
	backend B
}

// NewMultiHeadAttention creates numHeads independent heads, each with
// its own Xavier-initialized weights drawn from rng.
//
// Returns ErrEmptyHeadSet if numHeads < 1 and propagates head
// construction errors (ErrInvalidDimension for a bad Config).
func NewMultiHeadAttention[B tensor.Backend](numHeads int, cfg Config, rng *rand.Rand, backend B) (*MultiHeadAttention[B], error) {
	if numHeads < 1 {
		return nil, fmt.Errorf("%w: %d heads requested", ErrEmptyHeadSet, numHeads)
	}

	heads := make([]*Head[B], numHeads)
	for i := range heads {
		h, err := NewHead(cfg, rng, backend)
		if err != nil {
			return nil, err
		}
		heads[i] = h
	}

	return &MultiHeadAttention[B]{heads: heads, config: cfg, backend: backend}, nil
}

// NewMultiHeadAttentionFromHeads composes pre-built heads, e.g. heads
// loaded with pretrained weights. All heads must share a configuration.
//
// Returns ErrEmptyHeadSet for an empty slice and ErrShapeMismatch if
// the heads disagree on configuration.
func NewMultiHeadAttentionFromHeads[B tensor.Backend](heads []*Head[B], backend B) (*MultiHeadAttention[B], error) {
	if len(heads) == 0 {
		return nil, fmt.Errorf("%w: no heads supplied", ErrEmptyHeadSet)
	}

	cfg := heads[0].Config()
	for i, h := range heads[1:] {
		if h.Config() != cfg {
			return nil, fmt.Errorf("%w: head %d config %+v differs from head 0 config %+v", ErrShapeMismatch, i+1, h.Config(), cfg)
		}
	}

	return &MultiHeadAttention[B]{heads: heads, config: cfg, backend: backend}, nil
}

// NumHeads returns the number of heads.
func (m *MultiHeadAttention[B]) NumHeads() int {
	return len(m.heads)
}

// Heads returns the ordered head collection. The slice and the heads
// must be treated as read-only.
func (m *MultiHeadAttention[B]) Heads() []*Head[B] {
	return m.heads
}

// Compute invokes every head with the same three inputs and no mask,
// then concatenates the outputs along the feature axis in construction
// order. Result shape: (n_q, numHeads*d). With one head the result is
// bit-identical to that head's Compute: there is no output projection.
//
// Any ShapeMismatch raised by a head is propagated (the heads share a
// configuration, so the first head's error is every head's error).
func (m *MultiHeadAttention[B]) Compute(
	query, key, value *tensor.Tensor[float32, B],
) (*tensor.Tensor[float32, B], error) {
	return m.ComputeMasked(query, key, value, nil)
}

// ComputeMasked is Compute with one mask threaded into every head.
// Masking is a per-head concern; the same (n_q, n_k) mask applies to
// each head's scores.
func (m *MultiHeadAttention[B]) ComputeMasked(
	query, key, value *tensor.Tensor[float32, B],
	mask *tensor.Tensor[bool, B],
) (*tensor.Tensor[float32, B], error) {
	outs := make([]*tensor.Tensor[float32, B], len(m.heads))
	errs := make([]error, len(m.heads))

	var wg sync.WaitGroup
	for i, h := range m.heads {
		wg.Add(1)
		go func(i int, h *Head[B]) {
			defer wg.Done()
			outs[i], errs[i] = h.Compute(query, key, value, mask)
		}(i, h)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if len(outs) == 1 {
		return outs[0], nil
	}
	return tensor.Cat(outs, m.config.ColDim), nil
}
