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

// Package pacing splits writes into bus-sized chunks and, when a rate is
// set, holds each chunk until the controller's receive buffer can take it.
package pacing

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Pacer chunks and rate-limits writes.
type Pacer struct {
	limiter *rate.Limiter
	chunk   int
}

// New returns a Pacer emitting at most chunk bytes per write. A
// bytesPerSecond of zero disables rate limiting.
func New(bytesPerSecond, chunk int) *Pacer {
	if chunk < 1 {
		chunk = 1
	}
	p := &Pacer{chunk: chunk}
	if bytesPerSecond > 0 {
		burst := max(chunk, bytesPerSecond/10)
		p.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), burst)
	}
	return p
}

// Chunk returns the maximum bytes handed to one write call.
func (p *Pacer) Chunk() int {
	return p.chunk
}

// Limited reports whether writes are rate limited.
func (p *Pacer) Limited() bool {
	return p.limiter != nil
}

// Each calls write for consecutive chunks of data, waiting on the limiter
// before each one. It stops at the first error.
func (p *Pacer) Each(ctx context.Context, data []byte, write func([]byte) error) error {
	for off := 0; off < len(data); off += p.chunk {
		end := min(off+p.chunk, len(data))
		part := data[off:end]

		if p.limiter != nil {
			if err := p.limiter.WaitN(ctx, len(part)); err != nil {
				return fmt.Errorf("pacing wait: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := write(part); err != nil {
			return fmt.Errorf("chunk at offset %d: %w", off, err)
		}
	}
	return nil
}
