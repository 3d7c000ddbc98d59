// Package attention implements scaled dot-product attention and its
// multi-head composition, the forward numerical core of transformer
// sequence models.
package attention

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// MaskValue is the score written at masked positions before softmax.
//
// It is large enough in magnitude to drive the post-softmax weight of a
// masked position to zero, but deliberately finite: a true -Inf would
// turn a fully masked row into NaN (Inf - Inf during max-subtraction).
// The value is the conventional sentinel for typical score magnitudes;
// callers with unusually large scores can compare against it.
const MaskValue float32 = -1e9

// Config holds the shared hyperparameters of an attention head.
type Config struct {
	// EmbedDim is the feature width d. Projection matrices are (d, d),
	// so head outputs concatenate without a final reprojection.
	EmbedDim int

	// RowDim and ColDim fix the axis roles of 2D inputs: RowDim is the
	// sequence axis, ColDim the feature axis. They must differ and each
	// must be 0 or 1. The zero value of Config is invalid; use
	// DefaultConfig for the conventional (rows=sequence) layout.
	RowDim int
	ColDim int
}

// DefaultConfig returns the conventional axis layout: sequence along
// rows, features along columns.
func DefaultConfig(embedDim int) Config {
	return Config{EmbedDim: embedDim, RowDim: 0, ColDim: 1}
}

func (c Config) validate() error {
	if c.EmbedDim < 1 {
		return fmt.Errorf("%w: embed dim %d, must be >= 1", ErrInvalidDimension, c.EmbedDim)
	}
	if c.RowDim == c.ColDim {
		return fmt.Errorf("%w: row dim and col dim are both %d, must differ", ErrInvalidDimension, c.RowDim)
	}
	for _, dim := range [2]int{c.RowDim, c.ColDim} {
		if dim != 0 && dim != 1 {
			return fmt.Errorf("%w: axis %d out of range for 2D inputs", ErrInvalidDimension, dim)
		}
	}
	return nil
}

// Head is one scaled dot-product attention head with its own learned
// Q/K/V projection matrices.
//
// Weights are owned exclusively by the head and never mutated after
// construction, so concurrent Compute calls on one head are safe.
type Head[B tensor.Backend] struct {
	wq, wk, wv *tensor.Tensor[float32, B] // (d, d) projections
	config     Config
	backend    B
}

// NewHead creates an attention head with Xavier-initialized square
// projection matrices drawn from rng (deterministic when rng is seeded;
// nil uses the global source).
//
// Returns ErrInvalidDimension if cfg.EmbedDim < 1 or the axis roles are
// not a permutation of {0, 1}.
func NewHead[B tensor.Backend](cfg Config, rng *rand.Rand, backend B) (*Head[B], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	d := cfg.EmbedDim
	shape := tensor.Shape{d, d}
	return &Head[B]{
		wq:      Xavier(d, d, shape, rng, backend),
		wk:      Xavier(d, d, shape, rng, backend),
		wv:      Xavier(d, d, shape, rng, backend),
		config:  cfg,
		backend: backend,
	}, nil
}

// NewHeadFromWeights creates an attention head with caller-supplied
// projection matrices, e.g. pretrained weights. Each must be (d, d).
//
// The head takes ownership of the tensors; callers must not mutate them
// afterwards.
func NewHeadFromWeights[B tensor.Backend](cfg Config, wq, wk, wv *tensor.Tensor[float32, B], backend B) (*Head[B], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	want := tensor.Shape{cfg.EmbedDim, cfg.EmbedDim}
	for _, w := range []struct {
		name string
		t    *tensor.Tensor[float32, B]
	}{{"wq", wq}, {"wk", wk}, {"wv", wv}} {
		if !w.t.Shape().Equal(want) {
			return nil, fmt.Errorf("%w: %s shape %v, expected %v", ErrShapeMismatch, w.name, w.t.Shape(), want)
		}
	}

	return &Head[B]{wq: wq, wk: wk, wv: wv, config: cfg, backend: backend}, nil
}

// Config returns the head's configuration.
func (h *Head[B]) Config() Config {
	return h.config
}

// Weights returns the head's projection matrices (wq, wk, wv).
// They must be treated as read-only.
func (h *Head[B]) Weights() (wq, wk, wv *tensor.Tensor[float32, B]) {
	return h.wq, h.wk, h.wv
}

// Compute runs scaled dot-product attention:
//
//	Attention(Q, K, V) = softmax(QK^T / sqrt(d)) V
//
// with Q = query·Wq, K = key·Wk, V = value·Wv.
//
// query is (n_q, d); key and value are (n_k, d) and must share their
// sequence length (one key/value pair per source token). For
// self-attention pass the same matrix three times. mask, if non-nil,
// is (n_q, n_k) with true meaning "query i may not attend to key j";
// masked positions receive post-softmax weight ~0. A fully masked row
// degenerates to uniform weights over all keys: every score equals the
// sentinel, so max-subtraction leaves a constant row. This is defined
// behavior.
//
// The call is pure: no retained state, no side effects. Shape
// violations return ErrShapeMismatch before any computation.
func (h *Head[B]) Compute(
	query, key, value *tensor.Tensor[float32, B],
	mask *tensor.Tensor[bool, B],
) (*tensor.Tensor[float32, B], error) {
	out, _, err := h.ComputeWeights(query, key, value, mask)
	return out, err
}

// ComputeWeights is Compute but also returns the row-stochastic
// attention-weight matrix (n_q, n_k), useful for tests and analysis.
// The weights are freshly allocated per call and not retained.
func (h *Head[B]) ComputeWeights(
	query, key, value *tensor.Tensor[float32, B],
	mask *tensor.Tensor[bool, B],
) (output, weights *tensor.Tensor[float32, B], err error) {
	if err := h.validateInputs(query, key, value, mask); err != nil {
		return nil, nil, err
	}

	// Normalize to the rows=sequence layout; transpose back on exit.
	// The mask is always (n_q, n_k) regardless of axis convention.
	flipped := h.config.RowDim == 1
	if flipped {
		query, key, value = query.T(), key.T(), value.T()
	}

	q := query.MatMul(h.wq)
	k := key.MatMul(h.wk)
	v := value.MatMul(h.wv)

	scale := float32(1.0 / math.Sqrt(float64(h.config.EmbedDim)))
	scores := q.MatMul(k.T()).MulScalar(scale)

	if mask != nil {
		scores = scores.MaskedFill(mask, MaskValue)
	}

	weights = scores.Softmax(1) // normalize over keys
	output = weights.MatMul(v)

	if flipped {
		output = output.T()
	}
	return output, weights, nil
}

func (h *Head[B]) validateInputs(
	query, key, value *tensor.Tensor[float32, B],
	mask *tensor.Tensor[bool, B],
) error {
	d := h.config.EmbedDim
	rowDim, colDim := h.config.RowDim, h.config.ColDim

	for _, in := range []struct {
		name string
		t    *tensor.Tensor[float32, B]
	}{{"query", query}, {"key", key}, {"value", value}} {
		if len(in.t.Shape()) != 2 {
			return fmt.Errorf("%w: %s must be 2D, got %dD", ErrShapeMismatch, in.name, len(in.t.Shape()))
		}
		if in.t.Shape()[colDim] != d {
			return fmt.Errorf("%w: %s feature dim %d, expected %d", ErrShapeMismatch, in.name, in.t.Shape()[colDim], d)
		}
	}

	nq := query.Shape()[rowDim]
	nk := key.Shape()[rowDim]
	if nv := value.Shape()[rowDim]; nv != nk {
		return fmt.Errorf("%w: key seq len %d != value seq len %d", ErrShapeMismatch, nk, nv)
	}

	if mask != nil {
		want := tensor.Shape{nq, nk}
		if !mask.Shape().Equal(want) {
			return fmt.Errorf("%w: mask shape %v, expected %v", ErrShapeMismatch, mask.Shape(), want)
		}
	}

	return nil
}
