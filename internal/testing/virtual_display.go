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

// Package testing provides a virtual Digole controller for transport tests.
// It records the bytes a transport delivers and decodes them back into
// commands, so tests can assert on what the controller would have drawn
// rather than on raw byte offsets.
package testing

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

// ErrTruncated is returned by Decode when the stream ends inside a command.
var ErrTruncated = errors.New("stream ends inside a command")

// Op is one decoded command.
type Op struct {
	Mnemonic string
	Args     []byte
	Text     string
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s %q", o.Mnemonic, o.Text)
	}
	return fmt.Sprintf("%s % x", o.Mnemonic, o.Args)
}

// grammar describes the fixed part of one command family.
type grammar struct {
	mnemonic   string
	args       int
	terminated bool
}

// Three-letter mnemonics come first so "ETP" is not read as "ET" + 'P'.
var grammars = []grammar{
	{"ESC", 3, false},
	{"ETP", 2, true},
	{"ETO", 2, true},
	{"ETB", 0, true},
	{"TRT", 0, true},
	{"SLP", 1, true},
	{"DIM", 4, false},
	{"CL", 0, true},
	{"SF", 1, true},
	{"FR", 4, true},
	{"DR", 4, true},
	{"CC", 4, true},
	{"DP", 2, true},
	{"GP", 2, true},
	{"LT", 2, true},
	{"LN", 4, true},
	{"SD", 1, true},
	{"MA", 6, true},
	{"SM", 1, false},
}

// Decode splits a command stream into ops. Text after "TT" runs to the next
// line feed, which is kept in Text, or to the end of the stream. Bytes that
// start no known command decode as single RAW ops.
func Decode(stream []byte) ([]Op, error) {
	var ops []Op
	for pos := 0; pos < len(stream); {
		rest := stream[pos:]

		if bytes.HasPrefix(rest, []byte("TT")) {
			end := bytes.IndexByte(rest[2:], '\n')
			if end < 0 {
				ops = append(ops, Op{Mnemonic: "TT", Text: string(rest[2:])})
				break
			}
			ops = append(ops, Op{Mnemonic: "TT", Text: string(rest[2 : 2+end+1])})
			pos += 2 + end + 1
			continue
		}

		g, ok := match(rest)
		if !ok {
			ops = append(ops, Op{Mnemonic: "RAW", Args: []byte{rest[0]}})
			pos++
			continue
		}

		n := len(g.mnemonic) + g.args
		if len(rest) < n {
			return ops, fmt.Errorf("%s at offset %d: %w", g.mnemonic, pos, ErrTruncated)
		}
		args := bytes.Clone(rest[len(g.mnemonic):n])

		if g.mnemonic == "DIM" {
			w, h := int(args[2]), int(args[3])
			size := (w + 7) / 8 * h
			if len(rest) < n+size {
				return ops, fmt.Errorf("DIM at offset %d wants %d data bytes: %w", pos, size, ErrTruncated)
			}
			args = append(args, rest[n:n+size]...)
			n += size
		}

		if g.terminated {
			if len(rest) <= n {
				return ops, fmt.Errorf("%s at offset %d: %w", g.mnemonic, pos, ErrTruncated)
			}
			if rest[n] != '\n' {
				return ops, fmt.Errorf("%s at offset %d: expected line feed, got 0x%02x", g.mnemonic, pos, rest[n])
			}
			n++
		}

		ops = append(ops, Op{Mnemonic: g.mnemonic, Args: args})
		pos += n
	}
	return ops, nil
}

func match(b []byte) (grammar, bool) {
	for _, g := range grammars {
		if bytes.HasPrefix(b, []byte(g.mnemonic)) {
			return g, true
		}
	}
	return grammar{}, false
}

// VirtualDisplay is an io.Writer standing in for the controller end of a
// channel. It is safe for concurrent use.
type VirtualDisplay struct {
	writeErr  error
	stream    []byte
	writes    int
	failAfter int
	mu        sync.Mutex
}

// NewVirtualDisplay creates an empty virtual display.
func NewVirtualDisplay() *VirtualDisplay {
	return &VirtualDisplay{failAfter: -1}
}

// Write appends p to the received stream.
func (v *VirtualDisplay) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.failAfter >= 0 && v.writes >= v.failAfter {
		return 0, v.writeErr
	}
	v.writes++
	v.stream = append(v.stream, p...)
	return len(p), nil
}

// FailAfter makes every write after the first n return err.
func (v *VirtualDisplay) FailAfter(n int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failAfter = n
	v.writeErr = err
}

// Stream returns a copy of every byte received so far.
func (v *VirtualDisplay) Stream() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return bytes.Clone(v.stream)
}

// Ops decodes the received stream.
func (v *VirtualDisplay) Ops() ([]Op, error) {
	return Decode(v.Stream())
}

// Reset clears the received stream and any injected failure.
func (v *VirtualDisplay) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stream = nil
	v.writes = 0
	v.failAfter = -1
	v.writeErr = nil
}
