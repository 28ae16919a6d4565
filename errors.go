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
	"errors"
	"fmt"
	"io"
	"runtime"
	"syscall"
)

// Error categories
var (
	// Caller errors - never retried
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBitmapSize      = errors.New("bitmap size mismatch")

	// Session errors
	ErrSessionFailed = errors.New("display session failed")
	ErrSessionClosed = errors.New("display session closed")
	ErrChannelInUse  = errors.New("channel already bound to a display session")
	ErrNilTransport  = errors.New("transport is nil")

	// Transport errors
	ErrTransportClosed = errors.New("transport is closed")
	ErrShortWrite      = errors.New("short write")
)

// ValidationError reports a caller-supplied argument outside the range the
// wire protocol can carry.
type ValidationError struct {
	Err    error  // ErrInvalidArgument or ErrBitmapSize
	Op     string // Encoder that rejected the argument
	Field  string
	Reason string
	Value  int
	Min    int
	Max    int
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s=%d out of range [%d, %d]", e.Op, e.Field, e.Value, e.Min, e.Max)
}

func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidArgument
	}
	return e.Err
}

// TransportError wraps a failure reported by the underlying transport.
type TransportError struct {
	Err  error  // Underlying error, propagated verbatim
	Op   string // Command mnemonic or transport operation that failed
	Port string // Port or device identifier
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error with consistent formatting
func NewTransportError(op, port string, err error) *TransportError {
	return &TransportError{
		Op:   op,
		Port: port,
		Err:  err,
	}
}

// rangeError builds the ValidationError for a numeric argument.
func rangeError(op, field string, value, lo, hi int) *ValidationError {
	return &ValidationError{
		Err:   ErrInvalidArgument,
		Op:    op,
		Field: field,
		Value: value,
		Min:   lo,
		Max:   hi,
	}
}

// IsValidationError reports whether err was caused by a caller argument.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransportError reports whether err came from the transport.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFatal returns true if the error indicates the channel is gone and no
// further command can reach the display.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	if isDeviceGoneError(err) {
		return true
	}

	switch {
	case errors.Is(err, ErrTransportClosed),
		errors.Is(err, ErrSessionClosed),
		errors.Is(err, ErrSessionFailed),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrClosedPipe):
		return true
	default:
		return false
	}
}

// Windows error codes for device disconnection detection.
const (
	errAccessDenied syscall.Errno = 5   // ERROR_ACCESS_DENIED
	errGenFailure   syscall.Errno = 31  // ERROR_GEN_FAILURE
	errNoSuchDevice syscall.Errno = 433 // ERROR_NO_SUCH_DEVICE
)

// isDeviceGoneError checks for OS-level errors raised when a USB serial
// adapter is unplugged mid-write.
func isDeviceGoneError(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}

	//nolint:exhaustive // Only checking specific device-gone errors
	switch errno {
	case syscall.EIO, syscall.ENXIO, syscall.ENODEV:
		return true
	}

	if runtime.GOOS == "windows" {
		//nolint:exhaustive // Only checking specific device-gone errors
		switch errno {
		case errAccessDenied, errGenFailure, errNoSuchDevice:
			return true
		}
	}

	return false
}
