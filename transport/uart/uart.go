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

// Package uart provides a write-only serial transport for Digole displays.
package uart

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ZaparooProject/go-digole"
	"go.bug.st/serial"
)

// DefaultBaudRate is the factory setting of the Digole serial interface.
const DefaultBaudRate = 9600

// Transport implements the digole.Transport interface for UART communication.
type Transport struct {
	port     serial.Port
	portName string
	mu       sync.Mutex
	drain    bool
}

// windowsPostWriteDelay gives the Windows driver time to flush small writes
func windowsPostWriteDelay() {
	if runtime.GOOS == "windows" {
		time.Sleep(5 * time.Millisecond)
	}
}

// New opens portName at the default 9600 8N1.
func New(portName string) (*Transport, error) {
	return NewWithBaud(portName, DefaultBaudRate)
}

// NewWithBaud opens portName at baud, 8 data bits, no parity, one stop bit.
func NewWithBaud(portName string, baud int) (*Transport, error) {
	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port %s: %w", portName, err)
	}

	return NewWithPort(port, portName), nil
}

// NewWithPort wraps an already opened serial port.
func NewWithPort(port serial.Port, portName string) *Transport {
	return &Transport{
		port:     port,
		portName: portName,
		drain:    true,
	}
}

// SetDrain controls whether Write waits for the bytes to leave the UART.
// Some USB adapters do not implement drain; disable it for those.
func (t *Transport) SetDrain(drain bool) {
	t.mu.Lock()
	t.drain = drain
	t.mu.Unlock()
}

// Write sends data and returns once every byte has been handed to the port
// and, when draining is enabled, transmitted.
func (t *Transport) Write(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if t.port == nil {
		return digole.NewTransportError("write", t.portName, digole.ErrTransportClosed)
	}

	for off := 0; off < len(data); {
		n, err := t.port.Write(data[off:])
		if err != nil {
			return fmt.Errorf("UART write failed after %d of %d bytes: %w", off, len(data), err)
		}
		if n == 0 {
			return fmt.Errorf("UART write stalled after %d of %d bytes: %w", off, len(data), digole.ErrShortWrite)
		}
		off += n
	}

	if t.drain {
		if err := t.port.Drain(); err != nil {
			return fmt.Errorf("UART drain failed: %w", err)
		}
	}
	windowsPostWriteDelay()

	return nil
}

// Close closes the serial port
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	if err != nil {
		return fmt.Errorf("UART close failed: %w", err)
	}
	return nil
}

// IsConnected returns true if the port is open
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.port != nil
}

// Port returns the serial port name
func (t *Transport) Port() string {
	return t.portName
}

// Type returns the transport type
func (*Transport) Type() digole.TransportType {
	return digole.TransportUART
}

var _ digole.Transport = (*Transport)(nil)
