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

// Package spi provides a write-only SPI transport for Digole displays.
package spi

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ZaparooProject/go-digole"
	"github.com/ZaparooProject/go-digole/internal/pacing"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	// Default SPI settings
	defaultFreq = 200 * physic.KiloHertz
	mode        = spi.Mode0

	defaultChunk = 64
)

// Options configures the SPI transport
type Options struct {
	// Freq is the clock frequency; 0 selects 200kHz
	Freq physic.Frequency
	// BytesPerSecond limits throughput; 0 disables pacing
	BytesPerSecond int
	// Chunk is the largest single transfer; 0 selects 64 bytes
	Chunk int
}

// Transport implements the digole.Transport interface for SPI communication
type Transport struct {
	conn     spi.Conn
	closer   io.Closer
	pacer    *pacing.Pacer
	portName string
	mu       sync.Mutex
}

// New opens the SPI port by name, e.g. "/dev/spidev0.0" or "SPI0.0".
func New(portName string, opts Options) (*Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %s: %w", portName, err)
	}

	freq := opts.Freq
	if freq == 0 {
		freq = defaultFreq
	}
	conn, err := port.Connect(freq, mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to connect SPI: %w", err)
	}

	t := NewWithConn(conn, portName, opts)
	t.closer = port
	return t, nil
}

// NewWithConn wraps an already connected SPI conn. The caller keeps
// ownership of the port behind it.
func NewWithConn(conn spi.Conn, portName string, opts Options) *Transport {
	if opts.Chunk <= 0 {
		opts.Chunk = defaultChunk
	}
	return &Transport{
		conn:     conn,
		pacer:    pacing.New(opts.BytesPerSecond, opts.Chunk),
		portName: portName,
	}
}

// Write clocks data out in one or more transfers. Nothing is read back.
func (t *Transport) Write(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return digole.NewTransportError("write", t.portName, digole.ErrTransportClosed)
	}

	err := t.pacer.Each(ctx, data, func(part []byte) error {
		return t.conn.Tx(part, nil)
	})
	if err != nil {
		return fmt.Errorf("SPI write failed: %w", err)
	}
	return nil
}

// Close releases the SPI port if this transport opened it.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conn = nil
	if t.closer != nil {
		closer := t.closer
		t.closer = nil
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close SPI port: %w", err)
		}
	}
	return nil
}

// IsConnected returns true if the transport is connected
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn != nil
}

// Port returns the SPI port name
func (t *Transport) Port() string {
	return t.portName
}

// Type returns the transport type
func (*Transport) Type() digole.TransportType {
	return digole.TransportSPI
}

var _ digole.Transport = (*Transport)(nil)
