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

// Package detection lists serial ports that may have a Digole display
// attached. The display is write-only, so ports cannot be probed; candidates
// are filtered by USB identity and operator supplied ignore lists.
package detection

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.bug.st/serial/enumerator"
)

// ErrNoPortsFound is returned when no candidate port remains after filtering
var ErrNoPortsFound = errors.New("no serial ports found")

// PortInfo describes one serial port
type PortInfo struct {
	// Connection path (e.g., "/dev/ttyUSB0", "COM3")
	Path string
	// USB VID:PID in upper case, empty for built-in ports
	VIDPID string
	// USB product string, if reported
	Product string
	// USB serial number, if reported
	SerialNumber string
	// IsUSB is true for USB-serial adapters
	IsUSB bool
}

// String returns a human-readable representation of the port
func (p PortInfo) String() string {
	if !p.IsUSB {
		return p.Path
	}
	desc := p.Path + " [" + p.VIDPID + "]"
	if p.Product != "" {
		desc += " " + p.Product
	}
	return desc
}

// Options configures port listing
type Options struct {
	// USB VID:PID pairs to skip (e.g., ["1234:5678", "ABCD:EF01"])
	Blocklist []string
	// Port paths to explicitly ignore (e.g., ["/dev/ttyUSB0", "COM2"])
	IgnorePaths []string
	// USBOnly drops built-in UARTs
	USBOnly bool
}

// DefaultOptions returns sensible default listing options
func DefaultOptions() Options {
	return Options{
		Blocklist: DefaultBlocklist(),
	}
}

// detailedPorts is swapped out in tests.
var detailedPorts = enumerator.GetDetailedPortsList

// ListPorts returns candidate ports sorted by path, USB adapters first.
func ListPorts(opts Options) ([]PortInfo, error) {
	details, err := detailedPorts()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		port := PortInfo{
			Path:         d.Name,
			IsUSB:        d.IsUSB,
			Product:      d.Product,
			SerialNumber: d.SerialNumber,
		}
		if d.IsUSB && d.VID != "" && d.PID != "" {
			port.VIDPID = strings.ToUpper(d.VID + ":" + d.PID)
		}
		ports = append(ports, port)
	}

	filtered := FilterPorts(ports, opts)
	if len(filtered) == 0 {
		return nil, ErrNoPortsFound
	}
	return filtered, nil
}

// FilterPorts removes blocked, ignored and (optionally) non-USB ports and
// orders the rest.
func FilterPorts(ports []PortInfo, opts Options) []PortInfo {
	filtered := make([]PortInfo, 0, len(ports))
	for _, port := range ports {
		if opts.USBOnly && !port.IsUSB {
			continue
		}
		if IsBlocked(port.VIDPID, opts.Blocklist) {
			continue
		}
		if IsPathIgnored(port.Path, opts.IgnorePaths) {
			continue
		}
		filtered = append(filtered, port)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsUSB != filtered[j].IsUSB {
			return filtered[i].IsUSB
		}
		return filtered[i].Path < filtered[j].Path
	})
	return filtered
}
