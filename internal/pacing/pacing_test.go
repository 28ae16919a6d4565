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

package pacing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(ctx context.Context, t *testing.T, p *Pacer, data []byte) ([][]byte, error) {
	t.Helper()
	var parts [][]byte
	err := p.Each(ctx, data, func(part []byte) error {
		parts = append(parts, append([]byte(nil), part...))
		return nil
	})
	return parts, err
}

func TestPacer_Chunks(t *testing.T) {
	t.Parallel()

	p := New(0, 4)
	assert.False(t, p.Limited())
	assert.Equal(t, 4, p.Chunk())

	parts, err := collect(context.Background(), t, p, []byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("0123"), []byte("4567"), []byte("89")}, parts)

	parts, err = collect(context.Background(), t, p, nil)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestPacer_MinimumChunk(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, New(0, 0).Chunk())
}

func TestPacer_RateLimits(t *testing.T) {
	t.Parallel()

	// Burst is max(chunk, rate/10) = 10 bytes; the next 20 bytes take ~200ms
	p := New(100, 10)
	require.True(t, p.Limited())

	start := time.Now()
	parts, err := collect(context.Background(), t, p, make([]byte, 30))
	require.NoError(t, err)
	assert.Len(t, parts, 3)
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestPacer_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collect(ctx, t, New(0, 4), []byte("abcdef"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = collect(ctx, t, New(100, 4), []byte("abcdef"))
	require.Error(t, err)
}

func TestPacer_WriteErrorStops(t *testing.T) {
	t.Parallel()

	errBus := errors.New("bus")
	calls := 0
	err := New(0, 2).Each(context.Background(), []byte("abcdef"), func([]byte) error {
		calls++
		if calls == 2 {
			return errBus
		}
		return nil
	})
	require.ErrorIs(t, err, errBus)
	assert.Contains(t, err.Error(), "offset 2")
	assert.Equal(t, 2, calls)
}
