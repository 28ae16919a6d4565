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
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ZaparooProject/go-digole/internal/syncutil"
)

// Transport is the write-only channel to a Digole controller. It can be
// implemented by UART, I2C or SPI backends.
type Transport interface {
	// Write sends data to the controller and returns once the transport
	// reports the write finished.
	Write(ctx context.Context, data []byte) error

	// Close releases the underlying channel
	Close() error

	// IsConnected returns true if the transport is connected
	IsConnected() bool

	// Port identifies the physical channel, e.g. "/dev/ttyUSB0"
	Port() string

	// Type returns the transport type
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportUART represents UART/serial transport.
	TransportUART TransportType = "uart"
	// TransportI2C represents I2C bus transport.
	TransportI2C TransportType = "i2c"
	// TransportSPI represents SPI bus transport.
	TransportSPI TransportType = "spi"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)

var mockPortSeq atomic.Uint64

// MockTransport records every write for inspection in tests
type MockTransport struct {
	prefixErr map[string]error
	writeErr  error
	gate      <-chan struct{}
	port      string
	writes    [][]byte
	delay     time.Duration
	held      atomic.Int32
	mu        syncutil.RWMutex
	connected bool
}

// NewMockTransport creates a mock transport with a unique port name
func NewMockTransport() *MockTransport {
	return NewMockTransportWithPort(fmt.Sprintf("mock-%d", mockPortSeq.Add(1)))
}

// NewMockTransportWithPort creates a mock transport bound to the given port name
func NewMockTransportWithPort(port string) *MockTransport {
	return &MockTransport{
		port:      port,
		connected: true,
		prefixErr: make(map[string]error),
	}
}

// Write implements Transport. Failed writes are not recorded.
func (m *MockTransport) Write(ctx context.Context, data []byte) error {
	m.mu.RLock()
	connected := m.connected
	delay := m.delay
	gate := m.gate
	m.mu.RUnlock()

	if !connected {
		return ErrTransportClosed
	}

	if gate != nil {
		m.held.Add(1)
		select {
		case <-gate:
			m.held.Add(-1)
		case <-ctx.Done():
			m.held.Add(-1)
			return ctx.Err()
		}
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	for prefix, err := range m.prefixErr {
		if bytes.HasPrefix(data, []byte(prefix)) {
			return err
		}
	}

	m.writes = append(m.writes, bytes.Clone(data))
	return nil
}

// Close implements Transport
func (m *MockTransport) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

// IsConnected implements Transport
func (m *MockTransport) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// Port implements Transport
func (m *MockTransport) Port() string {
	return m.port
}

// Type implements Transport
func (*MockTransport) Type() TransportType {
	return TransportMock
}

// Test helper methods

// SetError makes every subsequent write fail with err; nil clears it
func (m *MockTransport) SetError(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}

// SetErrorForPrefix fails writes whose bytes start with prefix, e.g. "TT"
func (m *MockTransport) SetErrorForPrefix(prefix string, err error) {
	m.mu.Lock()
	m.prefixErr[prefix] = err
	m.mu.Unlock()
}

// ClearErrors removes all injected errors
func (m *MockTransport) ClearErrors() {
	m.mu.Lock()
	m.writeErr = nil
	m.prefixErr = make(map[string]error)
	m.mu.Unlock()
}

// SetDelay configures a delay to simulate the time a write spends on the wire
func (m *MockTransport) SetDelay(delay time.Duration) {
	m.mu.Lock()
	m.delay = delay
	m.mu.Unlock()
}

// SetGate holds every write until gate yields or is closed; nil removes it
func (m *MockTransport) SetGate(gate <-chan struct{}) {
	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()
}

// Held returns the number of writes currently waiting at the gate
func (m *MockTransport) Held() int {
	return int(m.held.Load())
}

// Writes returns a copy of every successful write in order
func (m *MockTransport) Writes() [][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([][]byte, len(m.writes))
	for i, w := range m.writes {
		out[i] = bytes.Clone(w)
	}
	return out
}

// Stream returns all successful writes concatenated as they went on the wire
func (m *MockTransport) Stream() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return bytes.Join(m.writes, nil)
}

// WriteCount returns the number of successful writes
func (m *MockTransport) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.writes)
}

// Reset clears the write log and reconnects the transport
func (m *MockTransport) Reset() {
	m.mu.Lock()
	m.writes = nil
	m.connected = true
	m.mu.Unlock()
}
