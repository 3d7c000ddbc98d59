// Copyright 2025 Kestrel ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the CPU compute backend.
package cpu

import (
	"github.com/kestrel-ml/kestrel/internal/backend/cpu"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *CPUBackend {
	return cpu.New()
}
