// Copyright 2025 Kestrel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package attention provides the public API for scaled dot-product
// attention and its multi-head composition.
//
// A Head projects query/key/value sources through its own learned
// square matrices, computes similarity scores scaled by 1/sqrt(d),
// applies an optional boolean mask, normalizes with a numerically
// stable softmax, and aggregates values. MultiHeadAttention fans the
// same inputs out to a fixed, ordered set of independent heads and
// concatenates their outputs along the feature axis.
//
// Example:
//
//	backend := cpu.New()
//	rng := rand.New(rand.NewSource(42))
//	mha, err := attention.NewMultiHeadAttention(4, attention.DefaultConfig(64), rng, backend)
//	out, err := mha.ComputeMasked(x, x, x, attention.CausalMask(seqLen, backend))
package attention

import (
	"math/rand"

	"github.com/kestrel-ml/kestrel/internal/attention"
	"github.com/kestrel-ml/kestrel/internal/tensor"
)

// MaskValue is the finite score sentinel written at masked positions
// before softmax.
const MaskValue = attention.MaskValue

// Sentinel errors; match with errors.Is.
var (
	ErrShapeMismatch    = attention.ErrShapeMismatch
	ErrEmptyHeadSet     = attention.ErrEmptyHeadSet
	ErrInvalidDimension = attention.ErrInvalidDimension
)

// Config holds the shared hyperparameters of an attention head.
type Config = attention.Config

// DefaultConfig returns the conventional axis layout: sequence along
// rows, features along columns.
func DefaultConfig(embedDim int) Config {
	return attention.DefaultConfig(embedDim)
}

// Head is one scaled dot-product attention head with its own learned
// Q/K/V projection matrices.
type Head[B tensor.Backend] = attention.Head[B]

// NewHead creates an attention head with Xavier-initialized square
// projection matrices drawn from rng.
func NewHead[B tensor.Backend](cfg Config, rng *rand.Rand, backend B) (*Head[B], error) {
	return attention.NewHead(cfg, rng, backend)
}

// NewHeadFromWeights creates an attention head with caller-supplied
// (d, d) projection matrices, e.g. pretrained weights.
func NewHeadFromWeights[B tensor.Backend](cfg Config, wq, wk, wv *tensor.Tensor[float32, B], backend B) (*Head[B], error) {
	return attention.NewHeadFromWeights(cfg, wq, wk, wv, backend)
}

// MultiHeadAttention owns a fixed-size, ordered collection of
// independent attention heads.
type MultiHeadAttention[B tensor.Backend] = attention.MultiHeadAttention[B]

// NewMultiHeadAttention creates numHeads independent heads, each with
// its own independently initialized weights.
func NewMultiHeadAttention[B tensor.Backend](numHeads int, cfg Config, rng *rand.Rand, backend B) (*MultiHeadAttention[B], error) {
	return attention.NewMultiHeadAttention(numHeads, cfg, rng, backend)
}

// NewMultiHeadAttentionFromHeads composes pre-built heads sharing a
// configuration.
func NewMultiHeadAttentionFromHeads[B tensor.Backend](heads []*Head[B], backend B) (*MultiHeadAttention[B], error) {
	return attention.NewMultiHeadAttentionFromHeads(heads, backend)
}

// Masks

// CausalMask creates an (n, n) autoregressive mask: true above the
// diagonal, forbidding attention to future positions.
func CausalMask[B tensor.Backend](n int, backend B) *tensor.Tensor[bool, B] {
	return attention.CausalMask(n, backend)
}

// PaddingMask creates an (nq, nk) mask forbidding attention to key
// positions at or beyond validLen.
func PaddingMask[B tensor.Backend](nq, nk, validLen int, backend B) *tensor.Tensor[bool, B] {
	return attention.PaddingMask(nq, nk, validLen, backend)
}

// Xavier draws a (Glorot-uniform) weight tensor from rng.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return attention.Xavier(fanIn, fanOut, shape, rng, backend)
}
