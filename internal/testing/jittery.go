// go-digole
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-digole.
//
// go-digole is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-digole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-digole; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package testing

import (
	"io"
	"math/rand/v2"
	"time"
)

// JitterConfig configures the behavior of JitteryWriter.
type JitterConfig struct {
	MaxLatencyMs int
	// MaxChunk caps how many bytes one Write accepts; 0 accepts everything
	MaxChunk int
	// StallAfterBytes makes Write return (0, nil) once, after that many bytes
	StallAfterBytes int
	Seed            uint64
}

// DefaultJitterConfig returns a configuration that mimics a USB-UART bridge
// accepting a few bytes at a time.
func DefaultJitterConfig() JitterConfig {
	return JitterConfig{
		MaxLatencyMs: 2,
		MaxChunk:     5,
	}
}

// JitteryWriter wraps an io.Writer to simulate drivers that accept fewer
// bytes than offered, so callers must loop until the whole buffer is out.
type JitteryWriter struct {
	backend      io.Writer
	rng          *rand.Rand
	config       JitterConfig
	written      int
	stallPending bool
}

// NewJitteryWriter wraps backend with short-write simulation.
func NewJitteryWriter(backend io.Writer, config JitterConfig) *JitteryWriter {
	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed^0xDEADBEEF)) //nolint:gosec // Test code, not crypto
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // Test code, not crypto
	}

	return &JitteryWriter{
		backend:      backend,
		config:       config,
		rng:          rng,
		stallPending: config.StallAfterBytes > 0,
	}
}

// Write forwards a random-length prefix of data to the backend.
func (j *JitteryWriter) Write(data []byte) (int, error) {
	if j.config.MaxLatencyMs > 0 {
		if delay := time.Duration(j.rng.IntN(j.config.MaxLatencyMs+1)) * time.Millisecond; delay > 0 {
			time.Sleep(delay)
		}
	}

	if j.stallPending && j.written >= j.config.StallAfterBytes {
		j.stallPending = false
		return 0, nil
	}

	n := len(data)
	if j.config.MaxChunk > 0 && n > 1 {
		limit := min(n, j.config.MaxChunk)
		n = 1 + j.rng.IntN(limit)
	}

	written, err := j.backend.Write(data[:n])
	j.written += written
	return written, err //nolint:wrapcheck // Pass-through wrapper
}
