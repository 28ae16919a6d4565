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

// Package digole drives Digole serial graphic displays. It encodes drawing
// and text calls into the controller's command grammar and writes them, in
// order and one unit at a time, over a single write-only channel.
package digole

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ZaparooProject/go-digole/internal/syncutil"
	"github.com/rs/zerolog"
)

// State is the lifecycle phase of a Display
type State int32

const (
	// StateInitializing means the clear and ready message are still being written
	StateInitializing State = iota
	// StateReady means the session accepts and transmits commands
	StateReady
	// StateFailed means initialization failed; the session will not write again
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// job is one operation waiting for the channel: a single command or a
// sequence that must go out contiguously.
type job struct {
	ctx  context.Context
	done chan error
	cmds []Command
}

// Display is a session bound to one Digole controller.
//
// Thread Safety: Display is safe for concurrent use. Operations are queued
// FIFO and a single sequencer goroutine writes them one at a time, so the
// commands of one operation are never interleaved with another's. Each call
// blocks until its writes are acknowledged by the transport.
//
// There is no write timeout: a transport that never returns blocks every
// later operation. When an operation's context ends the caller returns at
// once; the job is skipped if it has not started, while a write already in
// progress runs to completion.
type Display struct {
	transport Transport
	log       zerolog.Logger
	initErr   error
	queue     chan *job
	ready     chan struct{}
	failed    chan struct{}
	stop      chan struct{}
	exited    chan struct{}
	key       string
	enc       Encoder
	wg        sync.WaitGroup
	closeOnce sync.Once
	mu        syncutil.RWMutex // guards initErr
	state     atomic.Int32
}

// New binds a session to transport and starts initialization: the screen is
// cleared and the ready message written before any caller command. New
// returns without waiting; use Ready or Wait to observe completion.
// Operations issued meanwhile queue behind initialization.
func New(transport Transport, opts ...Option) (*Display, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}

	cfg := defaultSessionConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	key := channelKey(transport)
	if err := channels.claim(key); err != nil {
		return nil, err
	}

	d := &Display{
		transport: transport,
		log:       sessionLogger(cfg.logger, cfg.verbose, transport.Port()),
		queue:     make(chan *job, cfg.queueDepth),
		ready:     make(chan struct{}),
		failed:    make(chan struct{}),
		stop:      make(chan struct{}),
		exited:    make(chan struct{}),
		key:       key,
		enc:       NewEncoder(cfg.overflow),
	}
	d.state.Store(int32(StateInitializing))

	initSeq := []Command{d.enc.Clear(), d.enc.Text(cfg.readyMessage)}

	d.wg.Add(1)
	go d.run(initSeq)

	return d, nil
}

// run is the sequencer: it owns the channel for the session's lifetime.
func (d *Display) run(initSeq []Command) {
	defer func() {
		d.drain()
		close(d.exited)
		d.wg.Done()
	}()

	d.log.Debug().Msg("init: clear and ready message")
	d.finishInit(d.transmit(context.Background(), initSeq))

	for {
		select {
		case <-d.stop:
			return
		case j := <-d.queue:
			j.done <- d.process(j)
		}
	}
}

// finishInit records the init outcome and fires the ready signal once.
func (d *Display) finishInit(err error) {
	if err != nil {
		d.mu.Lock()
		d.initErr = err
		d.mu.Unlock()
		d.state.Store(int32(StateFailed))
		close(d.failed)
		d.log.Error().Err(err).Msg("init failed")
	} else {
		d.state.Store(int32(StateReady))
		d.log.Info().Msg("display ready")
	}
	close(d.ready)
}

// drain fails every job still queued after stop.
func (d *Display) drain() {
	for {
		select {
		case j := <-d.queue:
			j.done <- ErrSessionClosed
		default:
			return
		}
	}
}

// process runs one dequeued job.
func (d *Display) process(j *job) error {
	if err := j.ctx.Err(); err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return err
	}
	return d.transmit(j.ctx, j.cmds)
}

// transmit writes cmds strictly in order, each write completing before the
// next begins. The first failure stops the sequence; bytes already written
// stay written.
func (d *Display) transmit(ctx context.Context, cmds []Command) error {
	for i, cmd := range cmds {
		if e := d.log.Debug(); e.Enabled() {
			e.Str("cmd", cmd.Name()).Int("len", cmd.Len()).Str("hex", hex.EncodeToString(cmd.wire)).Msg("write")
		}

		if err := d.transport.Write(ctx, cmd.Bytes()); err != nil {
			d.log.Warn().Err(err).
				Str("cmd", cmd.Name()).
				Int("step", i+1).
				Int("steps", len(cmds)).
				Msg("write failed")
			return NewTransportError(cmd.Name(), d.transport.Port(), err)
		}
	}
	return nil
}

// Submit writes one command and returns once the transport has acknowledged it.
func (d *Display) Submit(ctx context.Context, cmd Command) error {
	return d.SubmitSequence(ctx, []Command{cmd})
}

// SubmitSequence writes cmds back to back with no other operation between
// them. If a step fails the remaining steps are skipped and the error
// returned; earlier steps are not undone.
func (d *Display) SubmitSequence(ctx context.Context, cmds []Command) error {
	if len(cmds) == 0 {
		return nil
	}
	for i, c := range cmds {
		if c.IsZero() {
			return &ValidationError{
				Err:    ErrInvalidArgument,
				Op:     "SubmitSequence",
				Field:  fmt.Sprintf("cmds[%d]", i),
				Reason: "command was never encoded",
			}
		}
	}

	select {
	case <-d.stop:
		return ErrSessionClosed
	default:
	}
	if err := d.Err(); err != nil {
		return err
	}

	j := &job{ctx: ctx, cmds: cmds, done: make(chan error, 1)}
	select {
	case d.queue <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stop:
		return ErrSessionClosed
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.exited:
		select {
		case err := <-j.done:
			return err
		default:
			return ErrSessionClosed
		}
	}
}

// submitEncoded forwards an encoder result, returning encode errors without
// touching the channel.
func (d *Display) submitEncoded(ctx context.Context, cmd Command, err error) error {
	if err != nil {
		return err
	}
	return d.Submit(ctx, cmd)
}

// Ready is closed exactly once when initialization finishes, whether it
// succeeded or failed. Use Wait, Err or State to tell the two apart, or
// Failed to select on failure alone.
func (d *Display) Ready() <-chan struct{} {
	return d.ready
}

// Failed is closed when initialization fails. It stays open for a session
// that initialized successfully.
func (d *Display) Failed() <-chan struct{} {
	return d.failed
}

// Wait blocks until initialization finishes and returns its failure, if any.
func (d *Display) Wait(ctx context.Context) error {
	select {
	case <-d.ready:
		return d.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current lifecycle phase
func (d *Display) State() State {
	return State(d.state.Load())
}

// Err returns the initialization failure wrapped in ErrSessionFailed, or nil.
func (d *Display) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.initErr == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSessionFailed, d.initErr)
}

// Encoder returns the encoder used by the session, for building sequences
// passed to SubmitSequence.
func (d *Display) Encoder() Encoder {
	return d.enc
}

// Transport returns the underlying transport
func (d *Display) Transport() Transport {
	return d.transport
}

// Close stops the sequencer, fails queued operations with ErrSessionClosed,
// closes the transport and releases the channel for a new session.
func (d *Display) Close() error {
	var err error
	d.closeOnce.Do(func() {
		close(d.stop)
		if cerr := d.transport.Close(); cerr != nil {
			err = fmt.Errorf("failed to close transport: %w", cerr)
		}
		d.wg.Wait()
		channels.release(d.key)
		d.log.Debug().Msg("session closed")
	})
	return err
}
