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
	"fmt"

	"github.com/rs/zerolog"
)

// sessionConfig holds the resolved options for New
type sessionConfig struct {
	logger       zerolog.Logger
	readyMessage string
	queueDepth   int
	overflow     CornerOverflow
	verbose      bool
}

func defaultSessionConfig() *sessionConfig {
	def := DefaultConfig()
	return &sessionConfig{
		logger:       zerolog.Nop(),
		readyMessage: def.ReadyMessage,
		queueDepth:   def.QueueDepth,
		overflow:     OverflowReject,
	}
}

// Option configures a Display
type Option func(*sessionConfig) error

// WithLogger sets the logger the session writes to
func WithLogger(logger zerolog.Logger) Option {
	return func(c *sessionConfig) error {
		c.logger = logger
		return nil
	}
}

// WithVerbose logs every command written to the channel
func WithVerbose(verbose bool) Option {
	return func(c *sessionConfig) error {
		c.verbose = verbose
		return nil
	}
}

// WithReadyMessage sets the text written after the initial clear
func WithReadyMessage(msg string) Option {
	return func(c *sessionConfig) error {
		c.readyMessage = msg
		return nil
	}
}

// WithQueueDepth bounds how many operations may wait for the channel before
// callers block on enqueue
func WithQueueDepth(depth int) Option {
	return func(c *sessionConfig) error {
		if depth < 1 {
			return fmt.Errorf("queue depth %d: %w", depth, ErrInvalidArgument)
		}
		c.queueDepth = depth
		return nil
	}
}

// WithCornerOverflow sets the rectangle overflow policy
func WithCornerOverflow(policy CornerOverflow) Option {
	return func(c *sessionConfig) error {
		if policy < OverflowReject || policy > OverflowClamp {
			return fmt.Errorf("corner overflow %v: %w", policy, ErrInvalidArgument)
		}
		c.overflow = policy
		return nil
	}
}

// WithConfig applies the session fields of a loaded Config
func WithConfig(cfg Config) Option {
	return func(c *sessionConfig) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		overflow, err := cfg.Overflow()
		if err != nil {
			return err
		}
		c.readyMessage = cfg.ReadyMessage
		c.queueDepth = cfg.QueueDepth
		c.overflow = overflow
		c.verbose = cfg.Verbose
		return nil
	}
}
