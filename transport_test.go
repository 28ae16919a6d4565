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

package digole

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTransport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMockTransport()
	assert.Equal(t, TransportMock, m.Type())
	assert.NotEqual(t, m.Port(), NewMockTransport().Port(), "ports must be unique")

	require.NoError(t, m.Write(ctx, []byte("CL\n")))
	require.NoError(t, m.Write(ctx, []byte("TTx")))

	writes := m.Writes()
	writes[0][0] = 'X'
	assert.Equal(t, []byte("CL\nTTx"), m.Stream())

	errInjected := errors.New("injected")
	m.SetError(errInjected)
	require.ErrorIs(t, m.Write(ctx, []byte("CL\n")), errInjected)
	m.SetError(nil)
	assert.Equal(t, 2, m.WriteCount())

	require.NoError(t, m.Close())
	assert.False(t, m.IsConnected())
	require.ErrorIs(t, m.Write(ctx, []byte("CL\n")), ErrTransportClosed)

	m.Reset()
	assert.True(t, m.IsConnected())
	assert.Zero(t, m.WriteCount())
}

func TestMockTransport_GateHonoursContext(t *testing.T) {
	t.Parallel()

	m := NewMockTransport()
	m.SetGate(make(chan struct{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, m.Write(ctx, []byte("CL\n")), context.Canceled)
	assert.Zero(t, m.WriteCount())
}

func TestMockTransport_Held(t *testing.T) {
	t.Parallel()

	m := NewMockTransport()
	gate := make(chan struct{})
	m.SetGate(gate)

	done := make(chan error, 1)
	go func() { done <- m.Write(context.Background(), []byte("CL\n")) }()

	require.Eventually(t, func() bool { return m.Held() == 1 }, time.Second, time.Millisecond)
	close(gate)
	require.NoError(t, <-done)
	assert.Zero(t, m.Held())
	assert.Equal(t, 1, m.WriteCount())
}
