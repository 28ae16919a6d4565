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

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	digole "github.com/ZaparooProject/go-digole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "digole.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
transport = "uart"
device = "/dev/ttyUSB0"
baud_rate = 9600
queue_depth = 8
`), 0o600))

	cfg, err := loadConfig(&options{
		configPath: path,
		devicePath: "/dev/ttyACM1",
		baud:       115200,
		debug:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM1", cfg.Device)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, 8, cfg.QueueDepth)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_RejectsInvalidOverride(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(&options{baud: 1234})
	require.Error(t, err)
	assert.ErrorIs(t, err, digole.ErrInvalidArgument)

	_, err = loadConfig(&options{transport: "can"})
	require.Error(t, err)
}

func TestOpenTransport_RequiresDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		transport string
	}{
		{name: "i2c", transport: "i2c"},
		{name: "spi", transport: "spi"},
		{name: "unknown", transport: "usb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := digole.DefaultConfig()
			cfg.Transport = tt.transport
			transport, err := openTransport(cfg)
			require.Error(t, err)
			assert.Nil(t, transport)
		})
	}
}

func TestRunDemo_DrawsEverything(t *testing.T) {
	t.Parallel()

	mock := digole.NewMockTransport()
	display, err := digole.New(mock)
	require.NoError(t, err)
	defer func() { _ = display.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, display.Wait(ctx))
	require.NoError(t, runDemo(ctx, display))

	// Init clear, ready text, then the demo
	writes := mock.Writes()
	require.GreaterOrEqual(t, len(writes), 14)
	assert.Equal(t, []byte("CL\n"), writes[0])
	assert.Equal(t, []byte("CL\n"), writes[2])
	assert.Equal(t, []byte("SF\x0a\n"), writes[3])
	assert.Equal(t, []byte("ETP\x00\x01\n"), writes[4])
	assert.Equal(t, []byte("TTgo-digole"), writes[5])

	last := writes[len(writes)-1]
	assert.True(t, bytes.HasPrefix(last, []byte("DIM\x27\x07\x32\x32")), "logo header: %q", last[:8])
	assert.Len(t, last, 7+digole.PackedSize(digole.LogoWidth, digole.LogoHeight))

	stream := mock.Stream()
	assert.True(t, bytes.Contains(stream, []byte("DIM\x60\x00\x20\x20")), "badge missing")
	assert.True(t, bytes.Contains(stream, []byte("CC\x3c\x28\x0c\x00\n")), "circle frame missing")
	assert.True(t, bytes.Contains(stream, []byte("FR\x04\x18\x24\x24\n")), "box missing")
}

func TestBadgeData_Size(t *testing.T) {
	t.Parallel()

	assert.Len(t, badgeData, digole.PackedSize(badgeWidth, badgeHeight))
}

func TestDemoError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err          error
		name         string
		wantNil      bool
		disconnected bool
	}{
		{name: "success", err: nil, wantNil: true},
		{
			name:         "device unplugged",
			err:          digole.NewTransportError("DP", "/dev/ttyUSB0", syscall.ENODEV),
			disconnected: true,
		},
		{name: "session closed", err: digole.ErrSessionClosed, disconnected: true},
		{name: "bad argument", err: digole.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := demoError(tt.err)
			if tt.wantNil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.disconnected, errors.Is(err, errDisplayDisconnected))
		})
	}
}

func TestRunDemo_DisconnectedDisplay(t *testing.T) {
	t.Parallel()

	mock := digole.NewMockTransportWithPort("mock-unplugged")
	display, err := digole.New(mock)
	require.NoError(t, err)
	defer func() { _ = display.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, display.Wait(ctx))

	mock.SetError(syscall.EIO)
	err = demoError(runDemo(ctx, display))
	require.ErrorIs(t, err, errDisplayDisconnected)
}
