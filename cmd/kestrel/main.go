// Package main provides a small demo of the Kestrel attention library:
// it tokenizes a sentence with tiktoken, builds deterministic embeddings
// for the token ids, and runs causal multi-head self-attention on CPU.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/pkoukk/tiktoken-go"

	"github.com/kestrel-ml/kestrel/attention"
	"github.com/kestrel-ml/kestrel/backend/cpu"
	"github.com/kestrel-ml/kestrel/tensor"
)

const version = "v0.1.0-dev"

func main() {
	text := flag.String("text", "the quick brown fox jumps over the lazy dog", "input text")
	embedDim := flag.Int("dim", 16, "embedding dimension per head")
	numHeads := flag.Int("heads", 4, "number of attention heads")
	seed := flag.Int64("seed", 42, "weight initialization seed")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Kestrel %s\n", version)
		return
	}

	if err := run(*text, *embedDim, *numHeads, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "kestrel: %v\n", err)
		os.Exit(1)
	}
}

func run(text string, embedDim, numHeads int, seed int64) error {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return fmt.Errorf("load encoding: %w", err)
	}
	ids := enc.Encode(text, nil, nil)
	if len(ids) == 0 {
		return fmt.Errorf("no tokens in input")
	}

	backend := cpu.New()
	x := embed(ids, embedDim, backend)

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: demo weights, reproducibility wanted
	mha, err := attention.NewMultiHeadAttention(numHeads, attention.DefaultConfig(embedDim), rng, backend)
	if err != nil {
		return err
	}

	mask := attention.CausalMask(len(ids), backend)
	out, err := mha.ComputeMasked(x, x, x, mask)
	if err != nil {
		return err
	}

	fmt.Printf("tokens:  %d %v\n", len(ids), ids)
	fmt.Printf("input:   %v\n", x)
	fmt.Printf("output:  %v\n", out)
	fmt.Printf("row 0:   %.4f\n", out.Data()[:min(embedDim*numHeads, 8)])
	return nil
}

// embed maps each token id to a deterministic pseudo-embedding row:
// the id seeds a uniform draw, so the same token always gets the same
// vector. A stand-in for a learned embedding table, which is outside
// this library's scope.
func embed(ids []int, dim int, backend *cpu.CPUBackend) *tensor.Tensor[float32, *cpu.CPUBackend] {
	x := tensor.Zeros[float32](tensor.Shape{len(ids), dim}, backend)
	data := x.Data()
	for i, id := range ids {
		rng := rand.New(rand.NewSource(int64(id))) //nolint:gosec // G404: deterministic demo embeddings
		for j := 0; j < dim; j++ {
			data[i*dim+j] = float32(rng.Float64()*2 - 1)
		}
	}
	return x
}
