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

// Package i2c provides a write-only I2C transport for Digole displays.
package i2c

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ZaparooProject/go-digole"
	"github.com/ZaparooProject/go-digole/internal/pacing"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// DefaultAddress is the factory 7-bit address of Digole I2C modules.
	DefaultAddress = 0x27

	// Digole modules accept standard-mode I2C only.
	maxClockFreq = 100 * physic.KiloHertz

	// defaultChunk keeps each transaction inside the controller's receive buffer.
	defaultChunk = 32
)

// Options configures the I2C transport
type Options struct {
	// Addr is the 7-bit device address; 0 selects DefaultAddress
	Addr uint16
	// BytesPerSecond limits throughput; 0 disables pacing
	BytesPerSecond int
	// Chunk is the largest single transaction; 0 selects 32 bytes
	Chunk int
}

// Transport implements the digole.Transport interface for I2C communication
type Transport struct {
	dev     *i2c.Dev
	closer  io.Closer // Held so Close() can release the OS file descriptor
	pacer   *pacing.Pacer
	busName string
	mu      sync.Mutex
	addr    uint16
}

// ParsePath splits a "/dev/i2c-1:0x27" style path into bus and address.
// A bare bus path returns DefaultAddress.
func ParsePath(path string) (bus string, addr uint16, err error) {
	bus, suffix, found := strings.Cut(path, ":")
	if !found || suffix == "" {
		return bus, DefaultAddress, nil
	}
	v, err := strconv.ParseUint(suffix, 0, 7)
	if err != nil {
		return "", 0, fmt.Errorf("invalid I2C address %q: %w", suffix, err)
	}
	return bus, uint16(v), nil
}

// New opens the bus named in path ("/dev/i2c-1" or "/dev/i2c-1:0x27").
func New(path string, opts Options) (*Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	busName, addr, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if opts.Addr == 0 {
		opts.Addr = addr
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", busName, err)
	}

	_ = bus.SetSpeed(maxClockFreq) // Ignore error, continue with default speed

	t := NewWithBus(bus, busName, opts)
	t.closer = bus
	return t, nil
}

// NewWithBus wraps an already opened bus. The caller keeps ownership of bus.
func NewWithBus(bus i2c.Bus, busName string, opts Options) *Transport {
	if opts.Addr == 0 {
		opts.Addr = DefaultAddress
	}
	if opts.Chunk <= 0 {
		opts.Chunk = defaultChunk
	}
	return &Transport{
		dev:     &i2c.Dev{Addr: opts.Addr, Bus: bus},
		pacer:   pacing.New(opts.BytesPerSecond, opts.Chunk),
		busName: busName,
		addr:    opts.Addr,
	}
}

// Write sends data as one or more write transactions.
func (t *Transport) Write(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dev == nil {
		return digole.NewTransportError("write", t.Port(), digole.ErrTransportClosed)
	}

	err := t.pacer.Each(ctx, data, func(part []byte) error {
		return t.dev.Tx(part, nil)
	})
	if err != nil {
		return fmt.Errorf("I2C write to 0x%02X failed: %w", t.addr, err)
	}
	return nil
}

// Close releases the I2C bus file descriptor if this transport opened it.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dev = nil // IsConnected() returns false after Close
	if t.closer != nil {
		closer := t.closer
		t.closer = nil
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close I2C bus: %w", err)
		}
	}
	return nil
}

// IsConnected returns true if the transport is connected
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dev != nil
}

// Port returns the bus name and device address, e.g. "/dev/i2c-1:0x27"
func (t *Transport) Port() string {
	return fmt.Sprintf("%s:0x%02X", t.busName, t.addr)
}

// Type returns the transport type
func (*Transport) Type() digole.TransportType {
	return digole.TransportI2C
}

var _ digole.Transport = (*Transport)(nil)
